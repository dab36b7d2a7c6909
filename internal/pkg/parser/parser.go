package parser

import (
	"fmt"
	"go/ast"
	"go/parser"
	"go/token"

	"github.com/mailru/errgen/internal/pkg/ds"
	"github.com/mailru/errgen/internal/pkg/egerror"
)

// Имя пакета, которое должно быть у файлов декларации
const DeclarationPackage = "declaration"

type TagNameType string

const (
	MessageTag TagNameType = "msg"
)

// Parse запуск парсера
func Parse(srcFileName string, ep *ds.ErrorPackage) error {
	return parseSource(srcFileName, nil, ep)
}

// parseSource разбирает файл декларации, src может быть nil,
// тогда содержимое читается из srcFileName
func parseSource(srcFileName string, src interface{}, ep *ds.ErrorPackage) error {
	fset := token.NewFileSet()

	node, err := parser.ParseFile(fset, srcFileName, src, parser.ParseComments)
	if err != nil {
		return fmt.Errorf("error parse file `%s`: %w", srcFileName, err)
	}

	if node.Name.Name != DeclarationPackage {
		return &egerror.ErrParseGenDecl{Name: srcFileName, Err: egerror.ErrParsePkgName}
	}

	if err = parseAst(fset, srcFileName, node.Decls, ep); err != nil {
		return fmt.Errorf("error declaration(%s) parse: %w", srcFileName, err)
	}

	return nil
}

// parseAst парсинг декларативного описания семейств ошибок (ast)
// Функции объявлять нельзя
func parseAst(fset *token.FileSet, fileName string, decls []ast.Decl, ep *ds.ErrorPackage) error {
	for _, decl := range decls {
		switch gen := decl.(type) {
		case *ast.GenDecl:
			if genErr := parseGen(fset, ep, gen); genErr != nil {
				return &egerror.ErrParseGenDecl{Name: fileName, Err: genErr}
			}
		case *ast.FuncDecl:
			return &egerror.ErrParseGenDecl{Name: fileName, Err: egerror.ErrParseFuncDeclNotSupported}
		default:
			return &egerror.ErrParseGenTypeDecl{Name: fileName, Type: decl, Err: egerror.ErrUnknown}
		}
	}

	return nil
}

// parseGen парсинг generic declaration
// Поддерживаются только импорты и типы
func parseGen(fset *token.FileSet, ep *ds.ErrorPackage, genD *ast.GenDecl) error {
	switch genD.Tok {
	case token.IMPORT:
		return parseTokenImport(ep, genD)
	case token.TYPE:
		return parseTokenType(fset, ep, genD)
	case token.CONST:
		return &egerror.ErrParseGenDecl{Name: genD.Tok.String(), Err: egerror.ErrParseConst}
	case token.VAR:
		return &egerror.ErrParseGenDecl{Name: genD.Tok.String(), Err: egerror.ErrParseVar}
	default:
		return &egerror.ErrParseGenDecl{Name: genD.Tok.String(), Err: egerror.ErrUnknown}
	}
}

// parseTokenImport финальные проверки перед парсингом импорта
func parseTokenImport(ep *ds.ErrorPackage, genD *ast.GenDecl) error {
	for _, spec := range genD.Specs {
		currImport, ok := spec.(*ast.ImportSpec)
		if !ok {
			return &egerror.ErrParseGenDecl{Name: genD.Tok.String(), Err: egerror.ErrParseCastImportType}
		}

		if impErr := ParseImport(&ep.ImportPackage, currImport); impErr != nil {
			return &egerror.ErrParseGenDecl{Name: genD.Tok.String(), Err: impErr}
		}
	}

	return nil
}

// parseTokenType каждая структура верхнего уровня - отдельное семейство ошибок
func parseTokenType(fset *token.FileSet, ep *ds.ErrorPackage, genD *ast.GenDecl) error {
	for _, spec := range genD.Specs {
		currType, ok := spec.(*ast.TypeSpec)
		if !ok || currType.Type == nil {
			return &egerror.ErrParseGenDecl{Name: genD.Tok.String(), Err: egerror.ErrParseCastSpecType}
		}

		name := currType.Name.Name
		pos := fset.Position(currType.Pos()).String()

		if err := checkName(name); err != nil {
			return &egerror.ErrParseTypeDecl{Name: name, Pos: pos, Err: err}
		}

		if currType.TypeParams != nil {
			return &egerror.ErrParseTypeDecl{Name: name, Pos: pos, Err: egerror.ErrParseTypeParams}
		}

		curr, ok := currType.Type.(*ast.StructType)
		if !ok || currType.Assign.IsValid() {
			return &egerror.ErrParseTypeDecl{Name: name, Pos: pos, Err: egerror.ErrParseNotStruct}
		}

		if curr.Fields == nil || len(curr.Fields.List) == 0 {
			return &egerror.ErrParseTypeDecl{Name: name, Pos: pos, Err: egerror.ErrParseStructureEmpty}
		}

		// Комментарий у одиночной декларации типа привязан к GenDecl
		doc := currType.Doc
		if doc == nil && !genD.Lparen.IsValid() {
			doc = genD.Doc
		}

		decl := ds.NewTypeDeclaration(name, docLines(doc))

		if err := ParseVariants(fset, &decl, curr.Fields.List); err != nil {
			return err
		}

		if err := ep.AddDeclaration(decl); err != nil {
			return err
		}
	}

	return nil
}
