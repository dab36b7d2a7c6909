package checker

import (
	"sort"

	"github.com/mailru/errgen/internal/pkg/conv"
	"github.com/mailru/errgen/internal/pkg/ds"
	"github.com/mailru/errgen/internal/pkg/egerror"
)

// checkPackage проверка пакета целиком
func checkPackage(ep *ds.ErrorPackage) error {
	if ep.PackageName == "" {
		return &egerror.ErrCheckPackageDecl{Pkg: ep.PackageName, Err: egerror.ErrCheckEmptyPackage}
	}

	if len(ep.Declarations) == 0 {
		return &egerror.ErrCheckPackageDecl{Pkg: ep.PackageName, Err: egerror.ErrCheckNoDeclarations}
	}

	return nil
}

// checkDeclaration проверка семейства
// - есть хотя бы один вариант
// - у семейства нет двух преобразований из одного и того же типа
func checkDeclaration(pkg string, decl *ds.TypeDeclaration) error {
	if len(decl.Variants) == 0 {
		return &egerror.ErrCheckTypeDecl{Pkg: pkg, Decl: decl.Name, Err: egerror.ErrCheckEmptyDeclaration}
	}

	sources := map[string]string{}

	for _, v := range decl.Variants {
		decision := conv.Classify(v)
		if decision.Outcome != conv.Emit {
			continue
		}

		if _, ex := sources[decision.Field.Mangle]; ex {
			return &egerror.ErrCheckIdentDecl{Pkg: pkg, Ident: decision.FuncName(decl.Name), Decl: decl.Name, Variant: v.Name, Err: egerror.ErrCheckConversionConflict}
		}

		sources[decision.Field.Mangle] = v.Name
	}

	return nil
}

// checkIdents все генерируемые идентификаторы пакета уникальны
// и не перекрывают имена пакетов, которые используются в типах полей
func checkIdents(ep *ds.ErrorPackage) error {
	idents := map[string]bool{}

	for i := range ep.Declarations {
		for _, v := range ep.Declarations[i].Variants {
			for _, f := range v.Fields {
				for _, q := range f.Qualifiers {
					idents[q] = true
				}
			}
		}
	}

	add := func(ident string, decl, variant string) error {
		if idents[ident] {
			return &egerror.ErrCheckIdentDecl{Pkg: ep.PackageName, Ident: ident, Decl: decl, Variant: variant, Err: egerror.ErrCheckIdentConflict}
		}

		idents[ident] = true

		return nil
	}

	for i := range ep.Declarations {
		decl := &ep.Declarations[i]

		if err := add(decl.Name, decl.Name, ""); err != nil {
			return err
		}

		for _, v := range decl.Variants {
			if err := add(decl.VariantTypeName(v), decl.Name, v.Name); err != nil {
				return err
			}

			if err := add(decl.ConstructorName(v), decl.Name, v.Name); err != nil {
				return err
			}

			if name := conv.Classify(v).FuncName(decl.Name); name != "" {
				if err := add(name, decl.Name, v.Name); err != nil {
					return err
				}
			}
		}
	}

	return nil
}

// checkFields проверка полей вариантов
// - имя поля не совпадает с методами варианта
// - пакеты из типов полей импортированы в декларации
func checkFields(ep *ds.ErrorPackage) error {
	for i := range ep.Declarations {
		decl := &ep.Declarations[i]

		for _, v := range decl.Variants {
			for _, f := range v.Fields {
				if f.Name == "Error" || f.Name == decl.MarkerMethod() {
					return &egerror.ErrCheckFieldDecl{Pkg: ep.PackageName, Decl: decl.Name, Variant: v.Name, Field: f.Name, Err: egerror.ErrCheckIdentConflict}
				}

				for _, q := range f.Qualifiers {
					if _, err := ep.FindImportByPkg(q); err != nil {
						return &egerror.ErrCheckFieldDecl{Pkg: ep.PackageName, Decl: decl.Name, Variant: v.Name, Field: f.Name, Err: egerror.ErrCheckImportNotFound}
					}
				}
			}
		}
	}

	return nil
}

// Check основная функция, которая запускает процесс проверки
// Должна вызываться только после окончания процесса парсинга всех деклараций
func Check(files map[string]*ds.ErrorPackage) error {
	names := make([]string, 0, len(files))
	for name := range files {
		names = append(names, name)
	}

	sort.Strings(names)

	for _, name := range names {
		ep := files[name]

		if err := checkPackage(ep); err != nil {
			return err
		}

		for i := range ep.Declarations {
			if err := checkDeclaration(ep.PackageName, &ep.Declarations[i]); err != nil {
				return err
			}
		}

		if err := checkIdents(ep); err != nil {
			return err
		}

		if err := checkFields(ep); err != nil {
			return err
		}
	}

	return nil
}
