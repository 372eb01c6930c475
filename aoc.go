// Package aoc are quick & dirty utilities for solving Advent of Code
// problems, plus the search and simulation engines the harder puzzles share.
// (forked from maisem/aoc, itself forked from bradfitz/aoc)
package aoc

import (
	"bufio"
	"bytes"
	stderrors "errors"
	"fmt"
	"go/ast"
	"go/parser"
	"go/token"
	"io"
	"io/fs"
	"log/slog"
	"net/http"
	"os"
	"path"
	"path/filepath"
	"reflect"
	"regexp"
	"runtime"
	"slices"
	"strconv"
	"strings"
	"time"

	"github.com/pkg/errors"
	"golang.org/x/exp/maps"
	"golang.org/x/sync/errgroup"
)

type sample struct {
	input string
	want  string
}

var sampleRx = regexp.MustCompile(`(?sm)^\s*want=([^\n]*)(?:\s+(.+\n))?\s*`)

func parseSample(comment string) (sample, bool) {
	text := strings.TrimPrefix(comment, "//")
	if v, ok := strings.CutPrefix(text, "/*"); ok {
		text = strings.TrimSuffix(v, "*/")
	}
	if m := sampleRx.FindStringSubmatch(text); m != nil {
		s := sample{
			want:  strings.TrimSpace(m[1]),
			input: m[2],
		}
		return s, true
	}
	var zero sample
	return zero, false
}

// extractSamples returns the samples found in the doc comments of the funcs
// in src, keyed by func name. A sample without input reuses the input of the
// previous one in the same file.
func extractSamples(filename string, src []byte) (map[string]sample, error) {
	fset := token.NewFileSet()
	f, err := parser.ParseFile(fset, filename, src, parser.ParseComments)
	if err != nil {
		return nil, errors.Wrapf(err, "parsing %s to extract samples", filename)
	}
	var lastInput string
	samples := make(map[string]sample)
	for _, d := range f.Decls {
		fd, ok := d.(*ast.FuncDecl)
		if !ok || fd.Doc == nil {
			continue
		}
		funcName := fd.Name.Name
		for _, c := range fd.Doc.List {
			s, ok := parseSample(c.Text)
			if ok {
				s.input = Or(s.input, lastInput)
				samples[funcName] = s
				lastInput = s.input
				break
			}
		}
	}
	return samples, nil
}

func extractAllSamples(src fs.FS) (map[string]sample, error) {
	all := make(map[string]sample)
	err := fs.WalkDir(src, ".", func(name string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if d.IsDir() || path.Ext(name) != ".go" || strings.HasSuffix(name, "_test.go") {
			return nil
		}
		b, err := fs.ReadFile(src, name)
		if err != nil {
			return err
		}
		samples, err := extractSamples(name, b)
		if err != nil {
			return err
		}
		for k, v := range samples {
			all[k] = v
		}
		return nil
	})
	return all, err
}

// Puzzle is embedded by solvers. It gives each part access to its input.
type Puzzle struct {
	cfg        *Config
	log        *slog.Logger
	day        day
	SampleMode bool

	solver  partSolver
	samples map[string]sample
}

func (p *Puzzle) Input() ([]byte, error) {
	if p.SampleMode {
		s, err := p.Sample()
		if err != nil {
			return nil, err
		}
		return []byte(s.input), nil
	}
	return p.fileOrFetch(fmt.Sprintf("%d/%d.input", p.cfg.Year, p.day.day), fmt.Sprintf("https://adventofcode.com/%d/day/%d/input", p.cfg.Year, p.day.day))
}

func (p *Puzzle) Scanner() (*bufio.Scanner, error) {
	in, err := p.Input()
	if err != nil {
		return nil, err
	}
	s := bufio.NewScanner(bytes.NewReader(in))
	s.Buffer(nil, 1<<20)
	return s, nil
}

// ForLinesY calls onLine for each line of input.
// The y value is the row number, starting with 0.
func (p *Puzzle) ForLinesY(onLine func(int, string)) error {
	s, err := p.Scanner()
	if err != nil {
		return err
	}
	y := -1
	for s.Scan() {
		y++
		onLine(y, s.Text())
	}
	return s.Err()
}

// ForLines calls onLine for each line of input.
func (p *Puzzle) ForLines(onLine func(line string)) error {
	return p.ForLinesY(func(_ int, line string) { onLine(line) })
}

// Lines returns the input lines, without a trailing empty line.
func (p *Puzzle) Lines() ([]string, error) {
	var lines []string
	err := p.ForLines(func(line string) { lines = append(lines, line) })
	return lines, err
}

func (p *Puzzle) Debugf(format string, args ...any) {
	p.log.Debug(fmt.Sprintf(format, args...), "day", p.day.day, "part", p.solver.Part, "sample", p.SampleMode)
}

func (p *Puzzle) Sample() (sample, error) {
	s, ok := p.samples[p.solver.Name]
	if !ok {
		return s, errors.Wrap(ErrNoSample, p.solver.Name)
	}
	return s, nil
}

type day struct {
	day   int
	parts []partSolver
}

type partSolver struct {
	fn   func() (any, error)
	Part string
	Name string
}

var methodRx = regexp.MustCompile(`^D(\d+)p(\d+.*)$`)

// extractMethods finds the methods of x named D{day}p{part}. They must have
// the signature func() (any, error).
func extractMethods(x any) (map[int]day, error) {
	v := reflect.ValueOf(x).Elem()
	if v.Kind() != reflect.Struct {
		return nil, errors.Errorf("Register: got %T; want struct", x)
	}
	vt := v.Type()
	byDays := map[int][]partSolver{}
	for i := 0; i < vt.NumMethod(); i++ {
		mn := vt.Method(i).Name
		matches := methodRx.FindStringSubmatch(mn)
		if len(matches) != 3 {
			continue
		}
		m, ok := v.Method(i).Interface().(func() (any, error))
		if !ok {
			return nil, errors.Errorf("%s: got %s; want func() (any, error)", mn, v.Method(i).Type())
		}
		d, err := strconv.Atoi(matches[1])
		if err != nil {
			return nil, errors.Wrap(err, mn)
		}
		byDays[d] = append(byDays[d], partSolver{
			fn:   m,
			Part: matches[2],
			Name: mn,
		})
	}
	days := make(map[int]day, len(byDays))
	for d, parts := range byDays {
		slices.SortFunc(parts, func(i, j partSolver) int {
			return strings.Compare(i.Part, j.Part)
		})
		days[d] = day{parts: parts, day: d}
	}
	return days, nil
}

func runDay(cfg *Config, slvr any, day day, samples map[string]sample) error {
	p := Puzzle{
		cfg:     cfg,
		log:     cfg.Logger,
		day:     day,
		samples: samples,
	}
	fmt.Fprintln(cfg.Out, "Running day", day.day)
	sr := reflect.ValueOf(slvr)
	sr.Elem().FieldByName("Puzzle").Set(reflect.ValueOf(&p))
	for _, ps := range day.parts {
		p.solver = ps
		if cfg.Part != "" && ps.Part != cfg.Part {
			continue
		}

		for _, sm := range []bool{true, false} {
			if !sm && cfg.OnlySample {
				continue
			} else if sm && cfg.SkipSample {
				continue
			}
			p.SampleMode = sm
			if !sm {
				// Prime the input.
				if _, err := p.Input(); err != nil {
					return errors.Wrapf(err, "day %d input", day.day)
				}
			}
			cfg.Logger.Debug("running", "day", day.day, "part", ps.Part, "sample", sm)
			t0 := time.Now()
			got, err := ps.fn()
			if err != nil {
				fmt.Fprintf(cfg.Out, "part %s: ❌ %v\n", ps.Part, err)
				return errors.Wrapf(err, "%s (sample=%v)", ps.Name, sm)
			}
			if sm {
				sample, err := p.Sample()
				if err != nil {
					return err
				}
				cfg.Logger.Debug("sample checked", "day", day.day, "part", ps.Part, "got", got, "want", sample.want)
				if fmt.Sprint(got) != sample.want {
					fmt.Fprintf(cfg.Out, "part %s: %v ❌; want %v\n", ps.Part, got, sample.want)
					return errors.Wrapf(ErrSampleMismatch, "%s: got %v, want %v", ps.Name, got, sample.want)
				}
				fmt.Fprintf(cfg.Out, "part %s sample: %v ✅ (%v) \n", ps.Part, got, time.Since(t0).Round(time.Microsecond))
			} else {
				fmt.Fprintf(cfg.Out, "part %s: %v (took %v) \n", ps.Part, got, time.Since(t0).Round(time.Microsecond))
			}
		}
	}
	return nil
}

// Run runs the solvers of slvr selected by cfg. src holds the solver sources
// the samples are read from. A failing day doesn't stop the others; all
// failures are returned together.
func Run(cfg Config, src fs.FS, slvr any) error {
	if err := cfg.Validate(); err != nil {
		return err
	}
	if cfg.Out == nil {
		cfg.Out = os.Stdout
	}
	if cfg.Logger == nil {
		cfg.Logger = NewLogger(os.Stderr, cfg.Debug)
	}
	samples, err := extractAllSamples(src)
	if err != nil {
		return err
	}
	days, err := extractMethods(slvr)
	if err != nil {
		return err
	}

	if cfg.Day != 0 {
		day, ok := days[cfg.Day]
		if !ok {
			return errors.Wrapf(ErrUnknownDay, "%d", cfg.Day)
		}
		return runDay(&cfg, slvr, day, samples)
	}

	var errs []error
	dayNums := maps.Keys(days)
	slices.Sort(dayNums)
	for _, d := range dayNums {
		if err := runDay(&cfg, slvr, days[d], samples); err != nil {
			cfg.Logger.Error("day failed", "day", d, "error", err)
			errs = append(errs, err)
		}
		fmt.Fprintln(cfg.Out)
	}
	return stderrors.Join(errs...)
}

func (p *Puzzle) session() (string, error) {
	b, err := os.ReadFile(p.cfg.SessionFile)
	if err != nil {
		return "", errors.Wrap(err, "reading session")
	}
	return strings.TrimSpace(string(b)), nil
}

func (p *Puzzle) fileOrFetch(filename, url string) ([]byte, error) {
	filename = filepath.Join(p.cfg.InputDir, filename)
	if f, err := os.ReadFile(filename); err == nil {
		return f, nil
	}

	body, err := p.fetch(url)
	if err != nil {
		return nil, err
	}
	if err := os.MkdirAll(filepath.Dir(filename), 0700); err != nil {
		return nil, err
	}
	if err := os.WriteFile(filename, body, 0644); err != nil {
		return nil, err
	}
	return body, nil
}

func (p *Puzzle) fetch(url string) ([]byte, error) {
	session, err := p.session()
	if err != nil {
		return nil, err
	}
	req, err := http.NewRequest("GET", url, nil)
	if err != nil {
		return nil, err
	}
	req.AddCookie(&http.Cookie{Name: "session", Value: session})
	p.log.Info("fetching", "url", url)
	res, err := http.DefaultClient.Do(req)
	if err != nil {
		return nil, errors.Wrapf(err, "fetching %s", url)
	}
	defer res.Body.Close()
	if res.StatusCode != 200 {
		return nil, errors.Errorf("bad status fetching %s: %v", url, res.Status)
	}
	return io.ReadAll(res.Body)
}

// Or returns the first non-zero element of list, or else returns the zero T.
func Or[T any](list ...T) T {
	for _, v := range list {
		if !reflect.ValueOf(v).IsZero() {
			return v
		}
	}
	var zero T
	return zero
}

// Parallel applies f to every element of in on a pool of GOMAXPROCS
// goroutines and returns the results in input order.
func Parallel[I, O any](in []I, f func(I) O) []O {
	out := make([]O, len(in))
	var g errgroup.Group
	g.SetLimit(runtime.GOMAXPROCS(0))
	for i, v := range in {
		g.Go(func() error {
			out[i] = f(v)
			return nil
		})
	}
	g.Wait()
	return out
}

func Fold[T any, R any](in []T, f func(R, T) R, defVal R) R {
	out := defVal
	for _, v := range in {
		out = f(out, v)
	}
	return out
}

func ParallelMapFold[A, B, C any](in []A, f func(A) B, f2 func(C, B) C, defVal C) C {
	return Fold(
		Parallel(in, f),
		f2,
		defVal,
	)
}
