package symbols

// Lookup resolves name starting at scope and walking parent links upward.
// Once the walk leaves a function scope, variables of enclosing scopes are
// invisible: finding one there fails the lookup, while functions and labels
// still resolve.
func (t *Table) Lookup(scope ScopeID, name string) (SymbolID, bool) {
	nameID, ok := t.Strings.Find(name)
	if !ok {
		return NoSymbolID, false
	}
	crossedFunction := false
	for id := scope; id.IsValid(); {
		sc := t.Scopes.Get(id)
		if sc == nil {
			return NoSymbolID, false
		}
		if sym, found := sc.NameIndex[nameID]; found {
			if crossedFunction && t.Symbols.Get(sym).Kind == SymbolVariable {
				return NoSymbolID, false
			}
			return sym, true
		}
		if sc.Kind == ScopeFunction {
			crossedFunction = true
		}
		id = sc.Parent
	}
	return NoSymbolID, false
}
