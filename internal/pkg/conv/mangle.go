package conv

import (
	"go/ast"
	"go/token"
	"strings"

	"github.com/mailru/errgen/internal/pkg/egerror"
	"golang.org/x/text/cases"
	"golang.org/x/text/language"
)

var toTitle = cases.Title(language.Und, cases.NoLower)

// Mangle строит часть идентификатора по типу поля:
//
//	uint32               -> Uint32
//	*os.PathError        -> PtrOsPathError
//	[]byte               -> SliceOfByte
//	[4]byte              -> Array4OfByte
//	map[string]int       -> MapOfStringToInt
//	chan<- int           -> SendChanOfInt
//	func(string) error   -> FuncOfStringReturningError
//	interface{}          -> Interface
//	struct{ A int }      -> StructWithAOfInt
//	List[int]            -> ListOfInt
//
// Имя нужно только для функции преобразования, то есть для варианта с одним полем.
func Mangle(expr ast.Expr) (string, error) {
	switch t := expr.(type) {
	case *ast.Ident:
		return toTitle.String(t.Name), nil
	case *ast.SelectorExpr:
		pkg, ok := t.X.(*ast.Ident)
		if !ok {
			return "", egerror.ErrParseFieldTypeUnsupported
		}

		return toTitle.String(pkg.Name) + toTitle.String(t.Sel.Name), nil
	case *ast.StarExpr:
		return prefixed("Ptr", t.X)
	case *ast.ParenExpr:
		return Mangle(t.X)
	case *ast.Ellipsis:
		return prefixed("VariadicOf", t.Elt)
	case *ast.ArrayType:
		if t.Len == nil {
			return prefixed("SliceOf", t.Elt)
		}

		size, err := mangleLen(t.Len)
		if err != nil {
			return "", err
		}

		return prefixed("Array"+size+"Of", t.Elt)
	case *ast.MapType:
		key, err := Mangle(t.Key)
		if err != nil {
			return "", err
		}

		return prefixed("MapOf"+key+"To", t.Value)
	case *ast.ChanType:
		switch t.Dir {
		case ast.SEND:
			return prefixed("SendChanOf", t.Value)
		case ast.RECV:
			return prefixed("RecvChanOf", t.Value)
		default:
			return prefixed("ChanOf", t.Value)
		}
	case *ast.FuncType:
		return mangleFunc(t)
	case *ast.InterfaceType:
		return mangleFields("Interface", "With", t.Methods)
	case *ast.StructType:
		return mangleFields("Struct", "With", t.Fields)
	case *ast.IndexExpr:
		return mangleGeneric(t.X, []ast.Expr{t.Index})
	case *ast.IndexListExpr:
		return mangleGeneric(t.X, t.Indices)
	default:
		return "", egerror.ErrParseFieldTypeUnsupported
	}
}

func prefixed(prefix string, elem ast.Expr) (string, error) {
	name, err := Mangle(elem)
	if err != nil {
		return "", err
	}

	return prefix + name, nil
}

// Длина массива: литерал или именованная константа
func mangleLen(expr ast.Expr) (string, error) {
	switch l := expr.(type) {
	case *ast.BasicLit:
		if l.Kind != token.INT {
			return "", egerror.ErrParseFieldTypeUnsupported
		}

		return l.Value, nil
	case *ast.Ident, *ast.SelectorExpr:
		return Mangle(l)
	default:
		return "", egerror.ErrParseFieldTypeUnsupported
	}
}

func mangleList(exprs []ast.Expr) (string, error) {
	parts := make([]string, 0, len(exprs))

	for _, e := range exprs {
		name, err := Mangle(e)
		if err != nil {
			return "", err
		}

		parts = append(parts, name)
	}

	return strings.Join(parts, "And"), nil
}

// Типы параметров с учётом группировки имён: `a, b int` это два параметра
func fieldTypes(list *ast.FieldList) []ast.Expr {
	if list == nil {
		return nil
	}

	ret := []ast.Expr{}

	for _, f := range list.List {
		n := len(f.Names)
		if n == 0 {
			n = 1
		}

		for i := 0; i < n; i++ {
			ret = append(ret, f.Type)
		}
	}

	return ret
}

func mangleFunc(t *ast.FuncType) (string, error) {
	name := "Func"

	if params := fieldTypes(t.Params); len(params) > 0 {
		list, err := mangleList(params)
		if err != nil {
			return "", err
		}

		name += "Of" + list
	}

	if results := fieldTypes(t.Results); len(results) > 0 {
		list, err := mangleList(results)
		if err != nil {
			return "", err
		}

		name += "Returning" + list
	}

	return name, nil
}

// mangleFields поля структуры и методы интерфейса: имя и тип,
// встроенные - только тип
func mangleFields(kind, sep string, list *ast.FieldList) (string, error) {
	if list == nil || len(list.List) == 0 {
		return kind, nil
	}

	parts := []string{}

	for _, f := range list.List {
		typ, err := Mangle(f.Type)
		if err != nil {
			return "", err
		}

		if len(f.Names) == 0 {
			parts = append(parts, typ)
			continue
		}

		for _, n := range f.Names {
			parts = append(parts, toTitle.String(n.Name)+"Of"+typ)
		}
	}

	return kind + sep + strings.Join(parts, "And"), nil
}

func mangleGeneric(base ast.Expr, args []ast.Expr) (string, error) {
	name, err := Mangle(base)
	if err != nil {
		return "", err
	}

	list, err := mangleList(args)
	if err != nil {
		return "", err
	}

	return name + "Of" + list, nil
}

// Qualifiers имена пакетов, на которые ссылается тип, в порядке появления.
// Собираются для любого типа, даже если имя для него построить нельзя
func Qualifiers(expr ast.Expr) []string {
	ret := []string{}
	seen := map[string]bool{}

	ast.Inspect(expr, func(n ast.Node) bool {
		sel, ok := n.(*ast.SelectorExpr)
		if !ok {
			return true
		}

		if pkg, ok := sel.X.(*ast.Ident); ok && !seen[pkg.Name] {
			seen[pkg.Name] = true
			ret = append(ret, pkg.Name)
		}

		return false
	})

	return ret
}
