// Пакет app - основной пакет приложения.
//
// Приложение проходит несколько этапов: парсинг, проверку и генерацию.
// При инициализации указывается путь где находятся декларации семейств ошибок
// и путь где сохраняются сгенерированные пакеты.
package app

import (
	"context"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path"
	"path/filepath"
	"regexp"
	"sort"
	"strings"

	"github.com/mailru/errgen/internal/pkg/checker"
	"github.com/mailru/errgen/internal/pkg/ds"
	"github.com/mailru/errgen/internal/pkg/egerror"
	"github.com/mailru/errgen/internal/pkg/generator"
	"github.com/mailru/errgen/internal/pkg/parser"
	"github.com/rs/zerolog"
)

// Структура приложения
// src и dst - исходная и конечная папки
// srcEntry, dstEntry - содержимое соответствующих папок на момент запуска
// packagesParsed - обработанные пакеты
// appInfo - информация о генераторе, попадает в заголовок сгенерированных файлов
// modName - имя модуля, используется для построения путей import-а
// fileToRemove - файлы и каталоги прошлой генерации, которые не были перегенерированы
type ErrGen struct {
	ctx                context.Context
	src, dst           string
	srcEntry, dstEntry []fs.DirEntry
	packagesParsed     map[string]*ds.ErrorPackage
	appInfo            *ds.AppInfo
	modName            string
	fileToRemove       map[string]bool
	logger             zerolog.Logger
}

// Инициализация приложения
// информацию по параметрам см. в описании структуры ErrGen
func Init(ctx context.Context, appInfo *ds.AppInfo, srcDir, dstDir, modName string, logger zerolog.Logger) (*ErrGen, error) {
	errgen := ErrGen{
		ctx:            ctx,
		src:            srcDir,
		dst:            dstDir,
		srcEntry:       []fs.DirEntry{},
		dstEntry:       []fs.DirEntry{},
		packagesParsed: map[string]*ds.ErrorPackage{},
		appInfo:        appInfo,
		modName:        modName,
		fileToRemove:   map[string]bool{},
		logger:         logger,
	}

	// Подготавливаем информацию из src и dst директорий
	if err := errgen.prepareDir(); err != nil {
		return nil, fmt.Errorf("error prepare dirs: %w", err)
	}

	return &errgen, nil
}

// Регулярное выражения для проверки названий пакетов
// сейчас поддерживаются пакеты состоящие исключительно из
// маленьких латинских символов, длинной не более 20
var rxPkgName = regexp.MustCompile(`^[a-z]{1,20}$`)

// Функция для добавления записи об очередном обработанном файле
func (a *ErrGen) addErrorPackage(pkgName string) (*ds.ErrorPackage, error) {
	if !rxPkgName.MatchString(pkgName) {
		return nil, &egerror.ErrParseGenDecl{Name: pkgName, Err: egerror.ErrBadPkgName}
	}

	// проверка на то, что такого пакета ранее не было
	if _, ex := a.packagesParsed[pkgName]; ex {
		return nil, &egerror.ErrParseGenDecl{Name: pkgName, Err: egerror.ErrRedefined}
	}

	ep := ds.NewErrorPackage()
	ep.PackageName = pkgName

	a.packagesParsed[pkgName] = ep

	return ep, nil
}

// Подготовка к проверке всех обработанных деклараций
// Проставляем пути для импорта и собираем существующие файлы в результирующей директории
func (a *ErrGen) prepareCheck() error {
	for _, ep := range a.packagesParsed {
		ep.ModuleName = path.Join(a.modName, filepath.ToSlash(a.dst), ep.PackageName)
	}

	exists, err := a.getExists()
	if err != nil {
		return fmt.Errorf("can't get exists files: %w", err)
	}

	// Строим мапку по существующим файлам для определения "лишних" файлов
	for _, file := range exists {
		a.fileToRemove[file] = true
	}

	return nil
}

func (a *ErrGen) saveGenerateResult(ep *ds.ErrorPackage, genRes []generator.GenerateFile) error {
	for _, gen := range genRes {
		dirPkg := filepath.Join(a.dst, gen.Dir)
		dstFileName := filepath.Join(dirPkg, gen.Name)

		a.logger.Debug().Str("package", ep.PackageName).Str("file", dstFileName).Msg("write package")

		if err := writeToFile(dirPkg, dstFileName, gen.Data); err != nil {
			return &egerror.ErrGeneratorFile{Name: ep.PackageName, Filename: dstFileName, Err: err}
		}

		// Удаляем из "лишних" файлов то, что перегенерировали
		if _, ex := a.fileToRemove[dstFileName]; ex {
			a.logger.Info().Str("file", dstFileName).Str("import", ep.ModuleName).Msg("replace file")
			delete(a.fileToRemove, dstFileName)
		} else {
			a.logger.Info().Str("file", dstFileName).Str("import", ep.ModuleName).Msg("create file")
		}

		delete(a.fileToRemove, dirPkg)
	}

	return nil
}

// Процесс генерации пакетов по подготовленным данным
func (a *ErrGen) generate() error {
	names := make([]string, 0, len(a.packagesParsed))
	for name := range a.packagesParsed {
		names = append(names, name)
	}

	sort.Strings(names)

	// Сначала генерируем все пакеты в памяти, на диск пишем только если все собрались
	results := make([][]generator.GenerateFile, 0, len(names))

	for _, name := range names {
		genRes, err := generator.Generate(a.appInfo.String(), *a.packagesParsed[name])
		if err != nil {
			return fmt.Errorf("generate error: %w", err)
		}

		results = append(results, genRes)
	}

	// Последняя точка, где отмена ещё ничего не оставит на диске
	if err := a.ctx.Err(); err != nil {
		return fmt.Errorf("generation interrupted: %w", err)
	}

	for i, name := range names {
		if err := a.saveGenerateResult(a.packagesParsed[name], results[i]); err != nil {
			return fmt.Errorf("error save result: %w", err)
		}
	}

	return nil
}

// Удаление файлов и каталогов прошлой генерации, для которых больше нет деклараций
// Файлы удаляются раньше каталогов, в которых они лежат
func (a *ErrGen) removeStale() {
	stale := make([]string, 0, len(a.fileToRemove))
	for name := range a.fileToRemove {
		stale = append(stale, name)
	}

	sort.Sort(sort.Reverse(sort.StringSlice(stale)))

	for _, name := range stale {
		a.logger.Info().Str("file", name).Msg("drop file")

		if err := os.Remove(name); err != nil {
			a.logger.Warn().Err(err).Str("file", name).Msg("can't drop file")
		}
	}
}

// Основная функция запускающая конвеер на выполнение
// всех этапов генерации
// - парсинг
// - обогащение перед проверкой
// - проверка
// - генерация
// - очистка "лишних" файлов
func (a *ErrGen) Run() error {
	// парсим декларации
	if err := a.parse(); err != nil {
		return err
	}

	if err := a.prepareCheck(); err != nil {
		return fmt.Errorf("can't prepare files: %w", err)
	}

	// Проверка информации полученной из деклараций на консистентность и валидность
	if err := checker.Check(a.packagesParsed); err != nil {
		return fmt.Errorf("error check declarations after parse: %w", err)
	}

	if err := a.generate(); err != nil {
		return fmt.Errorf("error generate: %w", err)
	}

	a.removeStale()

	a.logger.Info().Int("packages", len(a.packagesParsed)).Str("dst", a.dst).Msg("generation finished")

	return nil
}

// Создание директории для пакета и запись пакета на диск
func writeToFile(dirPkg string, dstFileName string, data []byte) error {
	if !strings.HasPrefix(dstFileName, dirPkg) {
		return fmt.Errorf("dstFileName must be into dstDir")
	}

	if _, err := os.Stat(dirPkg); err != nil {
		if !errors.Is(err, os.ErrNotExist) {
			return fmt.Errorf("save generated package to file error: %w", err)
		}

		if err = os.Mkdir(dirPkg, 0750); err != nil {
			return fmt.Errorf("error create dir while save to file: %w", err)
		}
	}

	if err := os.WriteFile(dstFileName, data, 0600); err != nil {
		return fmt.Errorf("error write to file: %w", err)
	}

	return nil
}

// Функция обрабатывает все декларации в папке src
// результат парсинга складывает в packagesParsed
func (a *ErrGen) parse() error {
	for _, srcFile := range a.srcEntry {
		if err := a.ctx.Err(); err != nil {
			return fmt.Errorf("parse interrupted: %w", err)
		}

		if !srcFile.Type().IsRegular() {
			return fmt.Errorf("error declaration file `%s`. File in declaration dir must be regular", srcFile.Name())
		}

		source := srcFile.Name()
		if !strings.HasSuffix(source, ".go") {
			a.logger.Debug().Str("file", source).Msg("skip non go file")
			continue
		}

		srcFileName := filepath.Join(a.src, source)

		// Создаём новую запись для очередного файла
		// при создании проверяются дубликаты деклараций
		ep, err := a.addErrorPackage(strings.TrimSuffix(source, ".go"))
		if err != nil {
			return fmt.Errorf("error declaration(%s) parse: %w", srcFileName, err)
		}

		if err := parser.Parse(srcFileName, ep); err != nil {
			return fmt.Errorf("error parse declaration: %w", err)
		}

		a.logger.Debug().Str("file", srcFileName).Int("declarations", len(ep.Declarations)).Msg("declaration parsed")
	}

	return nil
}

// Регулярное выражение для проверки пути
// Путь участвует в построении пути для импорта, по этому
// нельзя использовать точки, но можно относительно текущей диры
var rxPathValidator = regexp.MustCompile(`^[^\.]`)

// Подготовка рабочих каталогов, чтение деклараций
// Если каталог для генерации существует то проверяется наличие файла .errgen
// Если каталога нет, то он создаётся с файлом .errgen для будущих перегенераций
func (a *ErrGen) prepareDir() error {
	var err error

	if !rxPathValidator.MatchString(a.src) {
		return fmt.Errorf("invalid path to declarations")
	}

	if !rxPathValidator.MatchString(a.dst) {
		return fmt.Errorf("invalid path for generation")
	}

	a.srcEntry, err = os.ReadDir(a.src)
	if err != nil {
		return fmt.Errorf("error open dir `%s` with declarations: %w", a.src, err)
	}

	// Проверка существования каталога для генерации, если нет то создаём
	a.dstEntry, err = os.ReadDir(a.dst)
	if err != nil {
		if !os.IsNotExist(err) {
			return fmt.Errorf("error open dir `%s` for generation: %w", a.dst, err)
		}

		if err := os.MkdirAll(a.dst, 0750); err != nil {
			return fmt.Errorf("error create dir `%s` for generation: %w", a.dst, err)
		}

		if err := os.WriteFile(filepath.Join(a.dst, ds.MarkerFile), []byte("DO NOT DELETE THIS FILE"), 0600); err != nil {
			return fmt.Errorf("error create spec file `%s` for generation: %w", ds.MarkerFile, err)
		}

		a.dstEntry = []fs.DirEntry{}

		return nil
	}

	if _, err := os.Stat(filepath.Join(a.dst, ds.MarkerFile)); err != nil {
		return fmt.Errorf("destination directory not empty and hasn't %s special file", ds.MarkerFile)
	}

	return nil
}

// Получение списка существующих пакетов в каталоге для генерации
// Необходимо для составления списка пакетов на удаление после генерации
func (a *ErrGen) getExists() ([]string, error) {
	existsFile := []string{}

	for _, dstFile := range a.dstEntry {
		if dstFile.Name() == ds.MarkerFile {
			continue
		}

		if !dstFile.IsDir() {
			return nil, fmt.Errorf("destination folder can contain only dirs. `%s` not a dir", dstFile.Name())
		}

		dstPkgDir := filepath.Join(a.dst, dstFile.Name())

		existsFile = append(existsFile, dstPkgDir)

		goFiles, err := os.ReadDir(dstPkgDir)
		if err != nil {
			return nil, fmt.Errorf("can't read destination package folder(%s): %w", dstFile.Name(), err)
		}

		for _, goFile := range goFiles {
			if !goFile.Type().IsRegular() || !strings.HasSuffix(goFile.Name(), ".go") {
				return nil, fmt.Errorf("destination package folder can contain only go files. `%s` is not a go-file", goFile.Name())
			}

			existsFile = append(existsFile, filepath.Join(dstPkgDir, goFile.Name()))
		}
	}

	return existsFile, nil
}
