package egerror

import "errors"

var ErrCheckEmptyPackage = errors.New("empty package name")
var ErrCheckEmptyDeclaration = errors.New("declaration has no variants")
var ErrCheckNoDeclarations = errors.New("declaration file has no error types")
var ErrCheckIdentConflict = errors.New("generated identifier conflicts with another one")
var ErrCheckConversionConflict = errors.New("several single-field variants convert from the same type")

// Описание ошибки проверки пакета
type ErrCheckPackageDecl struct {
	Pkg string
	Err error
}

func (e *ErrCheckPackageDecl) Error() string {
	return ErrorBase(e)
}

// Описание ошибки проверки семейства ошибок
type ErrCheckTypeDecl struct {
	Pkg  string
	Decl string
	Err  error
}

func (e *ErrCheckTypeDecl) Error() string {
	return ErrorBase(e)
}

// Описание конфликта генерируемых идентификаторов
type ErrCheckIdentDecl struct {
	Pkg     string
	Ident   string
	Decl    string
	Variant string
	Err     error
}

func (e *ErrCheckIdentDecl) Error() string {
	return ErrorBase(e)
}

var ErrCheckImportNotFound = errors.New("package of field type is not imported")

// Описание ошибки проверки поля варианта
type ErrCheckFieldDecl struct {
	Pkg     string
	Decl    string
	Variant string
	Field   string
	Err     error
}

func (e *ErrCheckFieldDecl) Error() string {
	return ErrorBase(e)
}
