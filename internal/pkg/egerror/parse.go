package egerror

import "errors"

var ErrUnknown = errors.New("unknown entity")
var ErrRedefined = errors.New("entity redefined")
var ErrNameDeclaration = errors.New("error name declaration")
var ErrInvalidParams = errors.New("invalid params")
var ErrDuplicate = errors.New("duplicate")
var ErrParsePkgName = errors.New("package name of declaration file must be `declaration`")
var ErrParseFuncDeclNotSupported = errors.New("func declaration not implemented")
var ErrParseConst = errors.New("constant declaration not implemented")
var ErrParseVar = errors.New("variable declaration not implemented")
var ErrParseCastImportType = errors.New("error cast type to ImportSpec")
var ErrParseCastSpecType = errors.New("error cast type to TypeSpec")
var ErrParseImportNotSupported = errors.New("dot and blank imports are not supported")
var ErrParseTypeParams = errors.New("type parameters not supported")
var ErrParseNotStruct = errors.New("declaration must be a struct")
var ErrParseStructureEmpty = errors.New("declaration has no variants")
var ErrParseNameInvalid = errors.New("invalid identifier")

// Описание ошибки парсинга общей декларации
type ErrParseGenDecl struct {
	Name string
	Err  error
}

func (e *ErrParseGenDecl) Error() string {
	return ErrorBase(e)
}

// Описание ошибки парсинга неизвестного узла
type ErrParseGenTypeDecl struct {
	Name string
	Type interface{} `format:"%T"`
	Err  error
}

func (e *ErrParseGenTypeDecl) Error() string {
	return ErrorBase(e)
}

// Описание ошибки парсинга семейства ошибок
type ErrParseTypeDecl struct {
	Name string
	Pos  string
	Err  error
}

func (e *ErrParseTypeDecl) Error() string {
	return ErrorBase(e)
}

var ErrParseVariantNotStruct = errors.New("variant must be declared as struct{...}")
var ErrParseVariantEmbedded = errors.New("variant must be named")

// Описание ошибки парсинга варианта
type ErrParseVariantDecl struct {
	Decl    string
	Variant string
	Pos     string
	Err     error
}

func (e *ErrParseVariantDecl) Error() string {
	return ErrorBase(e)
}

var ErrParseFieldEmbedded = errors.New("payload field must be named")
var ErrParseFieldTypeUnsupported = errors.New("unsupported payload field type")
var ErrParseFieldTagForbidden = errors.New("tags are not allowed on payload fields")

// Описание ошибки парсинга поля с данными варианта
type ErrParseFieldDecl struct {
	Variant   string
	Name      string
	FieldType string
	Err       error
}

func (e *ErrParseFieldDecl) Error() string {
	return ErrorBase(e)
}

var ErrParseTagInvalidFormat = errors.New("invalid tag format")
var ErrParseTagUnknown = errors.New("unknown tag")

// Описание ошибки парсинга тегов варианта
type ErrParseTagDecl struct {
	Variant  string
	TagName  string
	TagValue string
	Err      error
}

func (e *ErrParseTagDecl) Error() string {
	return ErrorBase(e)
}

var ErrParseImportNotFound = errors.New("import not found")
var ErrGetImportName = errors.New("error get import name")

// Описание ошибки парсинга импортов
type ErrParseImportDecl struct {
	Path string
	Name string
	Err  error
}

func (e *ErrParseImportDecl) Error() string {
	return ErrorBase(e)
}
