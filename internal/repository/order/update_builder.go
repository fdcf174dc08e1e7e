package order

import (
	"errors"
	"fmt"
	"strings"
)

// ErrNoFieldsToUpdate патч без единого поля: SQL не строится вовсе,
// репозиторий трактует такой патч как no-op.
var ErrNoFieldsToUpdate = errors.New("no fields to update")

// BuildUpdate собирает частичный UPDATE по непустым полям патча.
//
// Контракт: $1 всегда id из WHERE, SET-плейсхолдеры нумеруются с $2
// в фиксированном порядке колонок (name, coffee_name, size, total);
// args идут в том же порядке — id первым, дальше значения полей.
// Текст запроса и список аргументов накапливаются синхронно и никогда
// не строятся независимо друг от друга: расхождение здесь не ошибка
// исполнения, а тихая запись чужого значения в чужую колонку.
func BuildUpdate(modify *OrderModifyDB) (string, []interface{}, error) {
	if modify == nil || modify.ID == nil {
		return "", nil, errors.New("order id is required")
	}

	type assignment struct {
		column string
		value  interface{}
	}

	assignments := make([]assignment, 0, 4)
	if modify.Name != nil {
		assignments = append(assignments, assignment{"name", *modify.Name})
	}
	if modify.CoffeeName != nil {
		assignments = append(assignments, assignment{"coffee_name", *modify.CoffeeName})
	}
	if modify.Size != nil {
		assignments = append(assignments, assignment{"size", *modify.Size})
	}
	if modify.Total != nil {
		assignments = append(assignments, assignment{"total", *modify.Total})
	}

	if len(assignments) == 0 {
		return "", nil, ErrNoFieldsToUpdate
	}

	args := make([]interface{}, 0, len(assignments)+1)
	args = append(args, *modify.ID)

	setClauses := make([]string, 0, len(assignments))
	for _, a := range assignments {
		args = append(args, a.value)
		setClauses = append(setClauses, fmt.Sprintf("%s = $%d", a.column, len(args)))
	}

	if len(args) != len(setClauses)+1 {
		return "", nil, fmt.Errorf("placeholder/argument mismatch: %d args for %d set clauses", len(args), len(setClauses))
	}

	query := fmt.Sprintf("UPDATE orders SET %s WHERE id = $1", strings.Join(setClauses, ", "))
	return query, args, nil
}
