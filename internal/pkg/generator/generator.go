package generator

import (
	"bufio"
	"bytes"
	_ "embed"
	"fmt"
	"io"
	"strconv"
	"strings"
	"text/template"

	"github.com/mailru/errgen/internal/pkg/conv"
	"github.com/mailru/errgen/internal/pkg/ds"
	"github.com/mailru/errgen/internal/pkg/egerror"
	"golang.org/x/tools/imports"
)

const TemplateName = `ErrorsTemplate`

//nolint:revive
//go:embed tmpl/errors.tmpl
var ErrorsTmpl string

// Результат генерации одного файла
type GenerateFile struct {
	Dir  string
	Name string
	Data []byte
}

// Данные передаваемые в шаблон
type PkgData struct {
	AppInfo      string
	ErrorPackage ds.ErrorPackage
}

var ErrorsTemplateFuncs = template.FuncMap{
	"classify": conv.Classify,
	"isEmit": func(d conv.Decision) bool {
		return d.Outcome == conv.Emit
	},
	"isAmbiguous": func(d conv.Decision) bool {
		return d.Outcome == conv.SkipAmbiguous
	},
	"quote": strconv.Quote,
}

// GenerateByTmpl исполняет шаблон и в случае ошибки прикладывает строки шаблона,
// на которых она произошла
func GenerateByTmpl(dstFile io.Writer, params PkgData, name, tmpl string) *egerror.ErrGeneratorPhases {
	tmplLines := strings.SplitAfter(tmpl, "\n")

	gen, err := template.New(TemplateName).Funcs(ErrorsTemplateFuncs).Parse(tmpl)
	if err != nil {
		errorLines, lerr := getTmplErrorLine(tmplLines, err.Error())
		if lerr != nil {
			errorLines = lerr.Error()
		}

		return &egerror.ErrGeneratorPhases{Name: name, Phase: "parse", TmplLines: errorLines, Err: err}
	}

	if err = gen.Execute(dstFile, params); err != nil {
		errorLines, lerr := getTmplErrorLine(tmplLines, err.Error())
		if lerr != nil {
			errorLines = lerr.Error()
		}

		return &egerror.ErrGeneratorPhases{Name: name, Phase: "execute", TmplLines: errorLines, Err: err}
	}

	return nil
}

// GenerateErrors генерирует код семейств ошибок одного пакета
func GenerateErrors(params PkgData) ([]byte, *egerror.ErrGeneratorPhases) {
	errorsWriter := bytes.Buffer{}
	errorsFile := bufio.NewWriter(&errorsWriter)

	if err := GenerateByTmpl(errorsFile, params, params.ErrorPackage.PackageName, ErrorsTmpl); err != nil {
		return nil, err
	}

	errorsFile.Flush()

	return errorsWriter.Bytes(), nil
}

// Generate основная функция генерации, из одного файла декларации получается один файл с кодом
func Generate(appInfo string, ep ds.ErrorPackage) ([]GenerateFile, error) {
	params := PkgData{
		AppInfo:      appInfo,
		ErrorPackage: ep,
	}

	data, genErr := GenerateErrors(params)
	if genErr != nil {
		return nil, &egerror.ErrGeneratorPkg{Name: ep.PackageName, Err: genErr}
	}

	filename := ep.PackageName + ".go"

	// Форматирование и чистка неиспользуемых импортов
	formatted, err := imports.Process(filename, data, nil)
	if err != nil {
		return nil, &egerror.ErrGeneratorFile{Name: ep.PackageName, Filename: filename, Err: fmt.Errorf("%w: %s", egerror.ErrGeneratorFormat, err)}
	}

	return []GenerateFile{
		{
			Dir:  ep.PackageName,
			Name: filename,
			Data: formatted,
		},
	}, nil
}
