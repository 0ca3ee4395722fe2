// Package replay runs scripted get/set sequences against an LRU cache and
// prints the cache state after every step.
//
// Script format, one operation per line:
//
//	set <key> <value>
//	get <key>
//	status
//
// Blank lines are skipped and '#' starts a comment. A line may be up to
// MaxLineSize bytes long.
package replay

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"strings"
	"time"

	"lrucache/internal/cache"
	"lrucache/internal/logger"
)

// MaxLineSize bounds a single script line, value included.
const MaxLineSize = 1 << 20

// ErrSyntax is returned for a script line that is not a valid operation.
var ErrSyntax = errors.New("replay: syntax error")

// Stats counts what a run did.
type Stats struct {
	Ops       int
	Sets      int
	Hits      int
	Misses    int
	Evictions int
}

// Runner applies script operations to one cache.
type Runner struct {
	cache  *cache.LRU[string, string]
	out    io.Writer
	log    *slog.Logger
	verify bool
}

// Option configures a Runner.
type Option func(*Runner)

// WithLogger sets the structured logger. The default discards everything.
func WithLogger(log *slog.Logger) Option {
	return func(r *Runner) {
		if log != nil {
			r.log = log
		}
	}
}

// WithVerify enables an invariant check after every operation.
func WithVerify(on bool) Option {
	return func(r *Runner) { r.verify = on }
}

// NewRunner returns a runner writing its trace to out.
func NewRunner(c *cache.LRU[string, string], out io.Writer, opts ...Option) *Runner {
	r := &Runner{
		cache: c,
		out:   out,
		log:   logger.Discard(),
	}
	for _, opt := range opts {
		opt(r)
	}
	return r
}

// Run executes the script read from src until EOF, the first error, or ctx cancellation.
// The returned Stats cover every operation applied before the run stopped.
func (r *Runner) Run(ctx context.Context, src io.Reader) (Stats, error) {
	var st Stats
	start := time.Now()

	sc := bufio.NewScanner(src)
	sc.Buffer(make([]byte, 0, 64*1024), MaxLineSize)
	lineNo := 0
	for sc.Scan() {
		if err := ctx.Err(); err != nil {
			return st, err
		}
		lineNo++

		op, err := parseLine(sc.Text())
		if err != nil {
			return st, fmt.Errorf("line %d: %w", lineNo, err)
		}
		if op.kind == opNone {
			continue
		}

		if err := r.apply(op, lineNo, &st); err != nil {
			r.log.Error("replay aborted", logger.Line(lineNo), logger.Error(err))
			return st, fmt.Errorf("line %d: %w", lineNo, err)
		}
	}
	if err := sc.Err(); err != nil {
		return st, fmt.Errorf("replay: read script: %w", err)
	}

	r.log.Info("replay finished",
		slog.Int("ops", st.Ops),
		slog.Int("evictions", st.Evictions),
		logger.Size(r.cache.Len()),
		logger.Capacity(r.cache.Cap()),
		logger.Elapsed(start),
	)
	return st, nil
}

func (r *Runner) apply(op operation, lineNo int, st *Stats) error {
	st.Ops++

	switch op.kind {
	case opSet:
		if !r.cache.Contains(op.key) && r.cache.Len() == r.cache.Cap() {
			if victim, ok := r.cache.Oldest(); ok {
				st.Evictions++
				r.log.Debug("evict", logger.Op("set"), logger.Line(lineNo), logger.Evicted(victim), logger.Key(op.key))
			}
		}
		r.cache.Set(op.key, op.value)
		st.Sets++
		r.log.Debug("set", logger.Op("set"), logger.Line(lineNo), logger.Key(op.key), logger.Size(r.cache.Len()))

	case opGet:
		v, ok := r.cache.Get(op.key)
		if ok {
			st.Hits++
			fmt.Fprintf(r.out, "get %s = %s\n", op.key, v)
		} else {
			st.Misses++
			fmt.Fprintf(r.out, "get %s = <miss>\n", op.key)
		}
		r.log.Debug("get", logger.Op("get"), logger.Line(lineNo), logger.Key(op.key), slog.Bool("hit", ok))
	}

	fmt.Fprintln(r.out, r.cache.String())

	if r.verify {
		return r.cache.Verify()
	}
	return nil
}

type opKind int

const (
	opNone opKind = iota
	opSet
	opGet
	opStatus
)

type operation struct {
	kind  opKind
	key   string
	value string
}

func parseLine(line string) (operation, error) {
	if i := strings.IndexByte(line, '#'); i >= 0 {
		line = line[:i]
	}
	fields := strings.Fields(line)
	if len(fields) == 0 {
		return operation{}, nil
	}

	switch strings.ToLower(fields[0]) {
	case "set":
		if len(fields) != 3 {
			return operation{}, fmt.Errorf("%w: set wants <key> <value>, got %q", ErrSyntax, line)
		}
		return operation{kind: opSet, key: fields[1], value: fields[2]}, nil
	case "get":
		if len(fields) != 2 {
			return operation{}, fmt.Errorf("%w: get wants <key>, got %q", ErrSyntax, line)
		}
		return operation{kind: opGet, key: fields[1]}, nil
	case "status":
		if len(fields) != 1 {
			return operation{}, fmt.Errorf("%w: status takes no arguments, got %q", ErrSyntax, line)
		}
		return operation{kind: opStatus}, nil
	default:
		return operation{}, fmt.Errorf("%w: unknown operation %q", ErrSyntax, fields[0])
	}
}
