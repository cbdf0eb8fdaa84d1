package mapper

import (
	"bufio"
	"context"
	"fmt"
	"io"

	log "github.com/sirupsen/logrus"
)

// Stats tallies one pass over the input.
type Stats struct {
	Lines   int64
	Headers int64
	Short   int64
	Emitted int64
}

// Run maps every line of in to out until in is exhausted. Output for line i
// is written before any output for line i+1. Read and write failures are
// wrapped and returned; skipped rows are not errors.
func (m *Mapper) Run(ctx context.Context, in io.Reader, out io.Writer) (Stats, error) {
	var st Stats
	rd := bufio.NewReader(in)
	w := bufio.NewWriterSize(out, 1<<16)

	for {
		if err := ctx.Err(); err != nil {
			if ferr := w.Flush(); ferr != nil {
				return st, fmt.Errorf("write output: %w", ferr)
			}
			return st, err
		}

		line, rerr := rd.ReadString('\n')
		if rerr != nil && rerr != io.EOF {
			return st, fmt.Errorf("read input: %w", rerr)
		}
		if line == "" && rerr == io.EOF {
			break
		}
		st.Lines++

		kvs, kind := m.mapLine(line)
		switch kind {
		case headerRow:
			st.Headers++
		case shortRow:
			st.Short++
		}
		if kind != dataRow && log.IsLevelEnabled(log.TraceLevel) {
			log.WithField("line", st.Lines).Tracef("skip %s row", kind)
		}

		for _, kv := range kvs {
			if err := EncodeKV(w, kv); err != nil {
				return st, fmt.Errorf("write output: %w", err)
			}
			st.Emitted++
		}

		if rerr == io.EOF {
			break
		}
	}

	if err := w.Flush(); err != nil {
		return st, fmt.Errorf("write output: %w", err)
	}
	return st, nil
}
