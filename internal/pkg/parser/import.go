package parser

import (
	"go/ast"
	"strings"

	"github.com/mailru/errgen/internal/pkg/ds"
	"github.com/mailru/errgen/internal/pkg/egerror"
)

// ParseImport переносит импорт файла декларации в сгенерированный пакет
func ParseImport(dst *ds.ImportPackage, importSpec *ast.ImportSpec) error {
	var pkg string

	path := strings.Trim(importSpec.Path.Value, `"`)

	if importSpec.Name != nil {
		pkg = importSpec.Name.Name
	}

	// Типы полей всегда квалифицированы пакетом, dot и blank импорты не нужны
	if pkg == "." || pkg == "_" {
		return &egerror.ErrParseImportDecl{Path: path, Name: pkg, Err: egerror.ErrParseImportNotSupported}
	}

	if _, err := dst.AddImport(path, pkg); err != nil {
		return &egerror.ErrParseImportDecl{Name: pkg, Err: err}
	}

	return nil
}
