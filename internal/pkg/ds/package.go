package ds

import (
	"regexp"

	"github.com/mailru/errgen/internal/pkg/egerror"
)

// PkgNameRx регулярное выражение вырезающее имя импортируемого пакета
var PkgNameRx = regexp.MustCompile(`([^/"]+)"?$`)

// Функция для получения имени импортируемого пакета из пути
func getImportName(path string) (string, error) {
	matched := PkgNameRx.FindStringSubmatch(path)
	if len(matched) < 2 {
		return "", &egerror.ErrParseImportDecl{Name: path, Err: egerror.ErrNameDeclaration}
	}

	return matched[1], nil
}

// Добавление нового семейства ошибок в пакет
func (ep *ErrorPackage) AddDeclaration(decl TypeDeclaration) error {
	if _, ex := ep.DeclMap[decl.Name]; ex {
		return &egerror.ErrParseTypeDecl{Name: decl.Name, Err: egerror.ErrRedefined}
	}

	ep.DeclMap[decl.Name] = len(ep.Declarations)
	ep.Declarations = append(ep.Declarations, decl)

	return nil
}

// Добавление варианта в семейство
func (td *TypeDeclaration) AddVariant(v VariantDeclaration) error {
	// Проверка на то, что имя не дублируется
	if _, ex := td.VariantMap[v.Name]; ex {
		return &egerror.ErrParseVariantDecl{Decl: td.Name, Variant: v.Name, Err: egerror.ErrRedefined}
	}

	td.VariantMap[v.Name] = len(td.Variants)
	td.Variants = append(td.Variants, v)

	return nil
}

func (ip *ImportPackage) AddImport(path string, reqImportName ...string) (ImportDeclaration, error) {
	if len(reqImportName) > 1 {
		return ImportDeclaration{}, &egerror.ErrParseImportDecl{Path: path, Err: egerror.ErrInvalidParams}
	}

	resultImportName := ""

	searchImportName, err := getImportName(path)
	if err != nil {
		return ImportDeclaration{}, &egerror.ErrParseImportDecl{Path: path, Name: "UNKNOWN", Err: egerror.ErrGetImportName}
	}

	if len(reqImportName) == 1 && reqImportName[0] != "" {
		if reqImportName[0] != searchImportName {
			resultImportName = reqImportName[0]
		}

		searchImportName = reqImportName[0]
	}

	if imp, ex := ip.ImportMap[path]; ex {
		if ip.Imports[imp].ImportName == resultImportName {
			return ip.Imports[imp], nil
		}
	}

	if imp, ex := ip.ImportPkgMap[searchImportName]; ex {
		if ip.Imports[imp].Path != path {
			return ImportDeclaration{}, &egerror.ErrParseImportDecl{Path: path, Name: searchImportName, Err: egerror.ErrDuplicate}
		}

		return ip.Imports[imp], nil
	}

	newImport := ImportDeclaration{
		Path:       path,
		ImportName: resultImportName,
	}

	ip.ImportMap[newImport.Path] = len(ip.Imports)
	ip.ImportPkgMap[searchImportName] = len(ip.Imports)
	ip.Imports = append(ip.Imports, newImport)

	return newImport, nil
}

func (ip *ImportPackage) FindImport(path string) (ImportDeclaration, error) {
	if impNum, ex := ip.ImportMap[path]; ex {
		return ip.Imports[impNum], nil
	}

	return ImportDeclaration{}, &egerror.ErrParseImportDecl{Path: path, Err: egerror.ErrParseImportNotFound}
}

func (ip *ImportPackage) FindImportByPkg(pkg string) (*ImportDeclaration, error) {
	if impNum, ex := ip.ImportPkgMap[pkg]; ex {
		return &ip.Imports[impNum], nil
	}

	return nil, &egerror.ErrParseImportDecl{Name: pkg, Err: egerror.ErrParseImportNotFound}
}
