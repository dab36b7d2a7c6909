package egerror

import "errors"

var ErrGeneragorGetTmplLine = errors.New("can't get error lines")
var ErrGeneragorEmptyTmplLine = errors.New("tmpl lines not set")
var ErrGeneragorErrorLineNotFound = errors.New("template lines not found in error")
var ErrGeneratorFormat = errors.New("generated code is not valid go")

// Описание ошибки генерации
type ErrGeneratorPkg struct {
	Name string
	Err  error
}

func (e *ErrGeneratorPkg) Error() string {
	return ErrorBase(e)
}

// Описание ошибки записи в файл результата генерации
type ErrGeneratorFile struct {
	Name     string
	Filename string
	Err      error
}

func (e *ErrGeneratorFile) Error() string {
	return ErrorBase(e)
}

// Описание ошибки фаз генерации
type ErrGeneratorPhases struct {
	Name      string
	Phase     string
	TmplLines string
	Err       error
}

func (e *ErrGeneratorPhases) Error() string {
	return ErrorBase(e)
}
