package parser

import (
	"go/ast"
	"go/token"
	"go/types"

	"github.com/mailru/errgen/internal/pkg/conv"
	"github.com/mailru/errgen/internal/pkg/ds"
	"github.com/mailru/errgen/internal/pkg/egerror"
)

// ParseVariants парсинг вариантов семейства.
// Каждое поле структуры верхнего уровня это вариант, тип поля - анонимная
// структура с данными варианта, тег `msg` задаёт текст сообщения.
func ParseVariants(fset *token.FileSet, decl *ds.TypeDeclaration, fields []*ast.Field) error {
	for _, field := range fields {
		pos := fset.Position(field.Pos()).String()

		if len(field.Names) == 0 {
			return &egerror.ErrParseVariantDecl{Decl: decl.Name, Variant: types.ExprString(field.Type), Pos: pos, Err: egerror.ErrParseVariantEmbedded}
		}

		payloadType, ok := field.Type.(*ast.StructType)
		if !ok {
			return &egerror.ErrParseVariantDecl{Decl: decl.Name, Variant: field.Names[0].Name, Pos: pos, Err: egerror.ErrParseVariantNotStruct}
		}

		message, hasMessage, err := parseVariantTag(field)
		if err != nil {
			return &egerror.ErrParseVariantDecl{Decl: decl.Name, Variant: field.Names[0].Name, Pos: pos, Err: err}
		}

		payload, err := ParsePayload(field.Names[0].Name, payloadType.Fields.List)
		if err != nil {
			return &egerror.ErrParseVariantDecl{Decl: decl.Name, Variant: field.Names[0].Name, Pos: pos, Err: err}
		}

		doc := docLines(field.Doc)

		// `A, B struct{}` объявляет несколько вариантов с одинаковым набором полей
		for _, name := range field.Names {
			if err := checkName(name.Name); err != nil {
				return &egerror.ErrParseVariantDecl{Decl: decl.Name, Variant: name.Name, Pos: pos, Err: err}
			}

			variant := ds.VariantDeclaration{
				Name:       name.Name,
				Doc:        doc,
				Fields:     append([]ds.PayloadField{}, payload...),
				Message:    message,
				HasMessage: hasMessage,
			}

			if err := decl.AddVariant(variant); err != nil {
				return err
			}
		}
	}

	return nil
}

// parseVariantTag разбор тега варианта, единственный допустимый ключ - msg
func parseVariantTag(field *ast.Field) (string, bool, error) {
	if field.Tag == nil {
		return "", false, nil
	}

	tagParam, err := splitTag(field.Tag.Value)
	if err != nil {
		return "", false, err
	}

	var (
		message    string
		hasMessage bool
	)

	for _, kv := range tagParam {
		switch TagNameType(kv[0]) {
		case MessageTag:
			if hasMessage {
				return "", false, &egerror.ErrParseTagDecl{Variant: field.Names[0].Name, TagName: kv[0], TagValue: kv[1], Err: egerror.ErrDuplicate}
			}

			message, hasMessage = kv[1], true
		default:
			return "", false, &egerror.ErrParseTagDecl{Variant: field.Names[0].Name, TagName: kv[0], TagValue: kv[1], Err: egerror.ErrParseTagUnknown}
		}
	}

	return message, hasMessage, nil
}

// ParsePayload парсинг полей с данными варианта.
// Поля должны быть именованными, теги на полях запрещены.
// Тип поля может быть любым, имя типа строится только для варианта с одним полем,
// из него получается имя функции преобразования
func ParsePayload(variant string, fields []*ast.Field) ([]ds.PayloadField, error) {
	payload := []ds.PayloadField{}
	exprs := []ast.Expr{}
	names := map[string]bool{}

	for _, field := range fields {
		fieldType := types.ExprString(field.Type)

		if len(field.Names) == 0 {
			return nil, &egerror.ErrParseFieldDecl{Variant: variant, FieldType: fieldType, Err: egerror.ErrParseFieldEmbedded}
		}

		if field.Tag != nil {
			return nil, &egerror.ErrParseFieldDecl{Variant: variant, Name: field.Names[0].Name, FieldType: fieldType, Err: egerror.ErrParseFieldTagForbidden}
		}

		for _, name := range field.Names {
			if err := checkName(name.Name); err != nil {
				return nil, &egerror.ErrParseFieldDecl{Variant: variant, Name: name.Name, FieldType: fieldType, Err: err}
			}

			if names[name.Name] {
				return nil, &egerror.ErrParseFieldDecl{Variant: variant, Name: name.Name, FieldType: fieldType, Err: egerror.ErrRedefined}
			}

			names[name.Name] = true

			payload = append(payload, ds.PayloadField{
				Name:       name.Name,
				Type:       fieldType,
				Qualifiers: conv.Qualifiers(field.Type),
			})
			exprs = append(exprs, field.Type)
		}
	}

	if len(payload) == 1 {
		mangle, err := conv.Mangle(exprs[0])
		if err != nil {
			return nil, &egerror.ErrParseFieldDecl{Variant: variant, Name: payload[0].Name, FieldType: payload[0].Type, Err: err}
		}

		payload[0].Mangle = mangle
	}

	return payload, nil
}
