// Package fuzztests houses Go fuzz harnesses for the asmopt pipeline
// (source -> lexer -> parser -> scope table -> disambiguate -> inlinable filter).
// Its goal is to guard against panics, hangs and broken invariants on
// arbitrary inputs.
//
// Назначение: загружать байты в FileSet и прогонять их через весь конвейер,
// проверяя уникальность имён и сохранение формы дерева.
//
// Не делает: генерацию корпусов, запись файлов, выполнение CLI.
package fuzztests
