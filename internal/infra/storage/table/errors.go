package table

import "errors"

var (
	// ErrTableNotFound возвращается, когда стол не найден или неактивен
	ErrTableNotFound = errors.New("table.repository: table not found")

	// ErrDuplicateTable возвращается при попытке создать стол с уже занятым номером
	ErrDuplicateTable = errors.New("table.repository: table with this id already exists")

	// ErrBuildQuery возвращается при ошибке построения SQL запроса
	ErrBuildQuery = errors.New("table.repository: failed to build query")

	// ErrExecQuery возвращается при ошибке выполнения SQL запроса
	ErrExecQuery = errors.New("table.repository: failed to execute query")

	// ErrScanRow возвращается при ошибке сканирования результата запроса
	ErrScanRow = errors.New("table.repository: failed to scan row")
)
