package scanner

import (
	"bytes"
	"fmt"

	"unenum/internal/diag"
	"unenum/internal/enumdef"
	"unenum/internal/source"
)

// Маркеры скомпилированного enum-паттерна:
//
//	var <pub>=(<in>=>(<внутренности>,<in>))(<pub>||{});
//
// Кандидат открывается вводным токеном "var " либо разделителем ","
// (второй и далее декларатор того же оператора).
const (
	introducer = "var "
	separator  = byte(',')
	terminator = byte(';')
)

// mode — тег конечного автомата. Commit переходный и всегда
// возвращает в Seeking.
type mode uint8

const (
	modeSeeking mode = iota
	modePublicRoot
	modeInnerRoot
	modeGuts
	modeCommit
)

// candidate живёт от выхода из Seeking до commit либо abort.
type candidate struct {
	publicRoot string
	innerRoot  string
	interior   string
	start      uint32 // включая вводный токен
	end        uint32 // сразу за закрывающей последовательностью
	introduced bool   // кандидат начат с "var ", а не с запятой
}

// Result — итог одного прохода по бандлу.
type Result struct {
	// Stripped — копия текста без зафиксированных определений,
	// уже после зачистки повисших "var ".
	Stripped []byte
	// Defs — определения в порядке появления; их Span не пересекаются.
	Defs []enumdef.Definition
	// Steps — фактическое число итераций автомата.
	Steps uint64
	// Truncated — скан упёрся в защитный потолок; Stripped собран
	// по возможности, но результат не считается проверенным.
	Truncated bool
}

// Scanner держит пару курсоров: читающий cur и пишущий write.
// Всё, что левее write, уже попало в out и не пересматривается.
type Scanner struct {
	file *source.File
	cur  Cursor
	opts Options

	out   bytes.Buffer
	write uint32

	mode mode
	cand candidate
	defs []enumdef.Definition

	// позиции голых "var " в out, ждущие зачистки
	introMarks []int

	steps    uint64
	maxSteps uint64

	truncated bool

	// Кэш поиска токенов. Позиция чтения на входе в seek монотонно
	// растёт, поэтому исчерпание необратимо, а найденный "var " правее
	// текущей позиции остаётся валидным.
	nextVar      uint32
	varCached    bool
	varExhausted bool
	comExhausted bool
}

// Scan выполняет один проход слева направо: копирует не-enum текст
// verbatim и вырезает каждое зафиксированное определение.
func Scan(file *source.File, opts Options) Result {
	s := &Scanner{
		file: file,
		cur:  NewCursor(file),
		opts: opts,
	}
	s.maxSteps = opts.MaxSteps
	if s.maxSteps == 0 {
		s.maxSteps = 8*uint64(len(file.Content)) + 1024
	}
	s.out.Grow(len(file.Content))
	s.run()
	return Result{
		Stripped:  s.cleanup(),
		Defs:      s.defs,
		Steps:     s.steps,
		Truncated: s.truncated,
	}
}

func (s *Scanner) run() {
loop:
	for {
		if s.steps >= s.maxSteps {
			s.runaway()
			break
		}
		s.steps++
		switch s.mode {
		case modeSeeking:
			if !s.seek() {
				break loop
			}
		case modePublicRoot:
			s.publicRoot()
		case modeInnerRoot:
			s.innerRoot()
		case modeGuts:
			s.guts()
		case modeCommit:
			s.commit()
		}
	}
	// Хвост уходит в вывод всегда, в том числе после раннего обрыва.
	s.flushTo(u32(len(s.file.Content)))
}

// seek находит ближайший вводный токен или разделитель и открывает
// кандидата. false — токенов больше нет, проход окончен.
func (s *Scanner) seek() bool {
	varAt, haveVar := s.findIntroducer()

	comAt := uint32(0)
	haveCom := false
	if !s.comExhausted {
		if idx := bytes.IndexByte(s.file.Content[s.cur.Off:], separator); idx >= 0 {
			comAt = s.cur.Off + u32(idx)
			haveCom = true
		} else {
			s.comExhausted = true
		}
	}

	if !haveVar && !haveCom {
		return false
	}

	// Токены соревнуются: кандидат начинается с ближайшего.
	introduced := haveVar && (!haveCom || varAt <= comAt)
	at := comAt
	if introduced {
		at = varAt
	}

	// Регион до кандидата гарантированно не enum.
	s.flushTo(at)
	s.cand = candidate{start: at, introduced: introduced}
	if introduced {
		s.cur.Off = at + u32(len(introducer))
	} else {
		s.cur.Off = at + 1
	}
	s.mode = modePublicRoot
	return true
}

func (s *Scanner) findIntroducer() (uint32, bool) {
	if s.varExhausted {
		return 0, false
	}
	if s.varCached && s.nextVar >= s.cur.Off {
		return s.nextVar, true
	}
	idx := bytes.Index(s.file.Content[s.cur.Off:], []byte(introducer))
	if idx < 0 {
		s.varExhausted = true
		s.varCached = false
		return 0, false
	}
	s.nextVar = s.cur.Off + u32(idx)
	s.varCached = true
	return s.nextVar, true
}

// publicRoot накапливает внешнее имя. За непустым именем обязан идти
// вход в немедленно вызываемое выражение "=(".
func (s *Scanner) publicRoot() {
	m := s.cur.Mark()
	for isIdentByte(s.cur.Peek()) {
		s.cur.Bump()
	}
	root := s.file.Text(s.cur.SpanFrom(m))
	if root == "" || !s.try2('=', '(') {
		// Обычное объявление или перечисление аргументов: не кандидат.
		s.abort()
		return
	}
	s.cand.publicRoot = root
	s.mode = modeInnerRoot
}

// innerRoot накапливает имя параметра замыкания. За непустым именем
// обязан идти вход в стрелочный блок "=>(".
func (s *Scanner) innerRoot() {
	m := s.cur.Mark()
	for isIdentByte(s.cur.Peek()) {
		s.cur.Bump()
	}
	root := s.file.Text(s.cur.SpanFrom(m))
	if root == "" || !s.try3('=', '>', '(') {
		// Стрелка без скобочного тела — почти наш паттерн, об этом
		// стоит сказать. Всё остальное — рядовой инициализатор.
		if b0, b1, ok := s.cur.Peek2(); ok && root != "" && b0 == '=' && b1 == '>' {
			s.report(diag.ScanRootAborted, diag.SevInfo,
				source.Span{Start: s.cand.start, End: s.cur.Off},
				fmt.Sprintf("arrow body of '%s' is not parenthesized", s.cand.publicRoot))
		}
		s.abort()
		return
	}
	s.cand.innerRoot = root
	s.mode = modeGuts
}

// guts ищет закрывающую последовательность и отдаёт внутренности на
// проверку. Оба имени к этому моменту известны, так что
// последовательность строится точно под кандидата.
func (s *Scanner) guts() {
	closing := "," + s.cand.innerRoot + "))(" + s.cand.publicRoot + "||{})"
	rest := s.file.Content[s.cur.Off:]
	at := bytes.Index(rest, []byte(closing))
	if at < 0 {
		s.report(diag.ScanClosingNotFound, diag.SevInfo,
			source.Span{Start: s.cand.start, End: s.cur.Off},
			fmt.Sprintf("no closing '%s' for candidate '%s'", closing, s.cand.publicRoot))
		s.abort()
		return
	}
	end := s.cur.Off + u32(at+len(closing))
	interior := string(rest[:at])
	if !enumdef.Validate(interior, s.cand.innerRoot) {
		s.report(diag.ScanInteriorRejected, diag.SevInfo,
			source.Span{Start: s.cand.start, End: end},
			fmt.Sprintf("body of '%s' is not an enum table", s.cand.publicRoot))
		s.abort()
		return
	}
	s.cand.interior = interior
	s.cand.end = end
	s.mode = modeCommit
}

// commit фиксирует определение и перепрыгивает его целиком.
func (s *Scanner) commit() {
	sp := source.Span{Start: s.cand.start, End: s.cand.end}
	def := enumdef.Definition{
		PublicRoot: s.cand.publicRoot,
		InnerRoot:  s.cand.innerRoot,
		Span:       sp,
		Raw:        s.file.Text(sp),
		Interior:   s.cand.interior,
		Introduced: s.cand.introduced,
	}
	s.defs = append(s.defs, def)
	s.report(diag.ScanInfo, diag.SevInfo, sp,
		fmt.Sprintf("enum definition '%s' captured", def.PublicRoot))
	if s.cand.introduced {
		// Голый "var " остаётся: следующий декларатор этого же
		// оператора может в нём нуждаться. Повисшие добирает cleanup.
		s.introMarks = append(s.introMarks, s.out.Len())
		s.out.WriteString(introducer)
	}
	s.write = s.cand.end
	s.cur.Off = s.cand.end
	s.mode = modeSeeking
}

// abort бросает кандидата: write не двигается, чтение продолжается
// сразу за вводным токеном — недокопированный регион добирает
// следующий flush.
func (s *Scanner) abort() {
	off := s.cand.start + 1
	if s.cand.introduced {
		off = s.cand.start + u32(len(introducer))
	}
	s.cur.Off = off
	s.mode = modeSeeking
}

func (s *Scanner) flushTo(pos uint32) {
	if pos > s.write {
		s.out.Write(s.file.Content[s.write:pos])
		s.write = pos
	}
}

func (s *Scanner) runaway() {
	s.truncated = true
	s.report(diag.ScanRunaway, diag.SevWarning,
		source.Span{Start: s.write, End: u32(len(s.file.Content))},
		fmt.Sprintf("scan stopped after %d steps; remaining text copied verbatim", s.steps))
}

// cleanup добирает повисшие объявления в уже собранном выводе:
// "var " вплотную к ';' удаляется вместе с ним, "var " вплотную к ','
// теряет запятую (остаток списка деклараторов живой). Метки обходим
// справа налево, чтобы удаления не сдвигали необработанные позиции.
func (s *Scanner) cleanup() []byte {
	b := s.out.Bytes()
	for i := len(s.introMarks) - 1; i >= 0; i-- {
		m := s.introMarks[i]
		after := m + len(introducer)
		switch {
		case after >= len(b):
			// "var " упёрся в конец текста — вводить больше нечего.
			b = b[:m]
		case b[after] == terminator:
			b = append(b[:m], b[after+1:]...)
		case b[after] == separator:
			b = append(b[:after], b[after+1:]...)
		}
	}
	return b
}
