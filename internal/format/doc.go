// Package format prints IR trees as canonical text.
//
// Назначение: стабильный вывод дерева для CLI, кеша и сравнения результатов проходов.
// Не делает: сохранения комментариев и исходной разметки (лексер их отбрасывает).
// Зависимости: internal/ast.
package format
