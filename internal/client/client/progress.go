package client

import (
	"io"
	"math"
)

// progressReader reports upload progress as the HTTP transport consumes the
// request body. Percentages are round(loaded*100/total), emitted only when
// the value changes, so the observed sequence is non-decreasing.
type progressReader struct {
	r          io.Reader
	total      int64
	loaded     int64
	lastPct    int
	onProgress func(int)
}

func newProgressReader(r io.Reader, total int64, onProgress func(int)) *progressReader {
	return &progressReader{r: r, total: total, lastPct: -1, onProgress: onProgress}
}

func (p *progressReader) Read(b []byte) (int, error) {
	n, err := p.r.Read(b)
	if n > 0 {
		p.loaded += int64(n)
		p.report()
	}
	return n, err
}

func (p *progressReader) report() {
	if p.onProgress == nil || p.total <= 0 {
		return
	}
	pct := int(math.Round(float64(p.loaded) * 100 / float64(p.total)))
	if pct > 100 {
		pct = 100
	}
	if pct != p.lastPct {
		p.lastPct = pct
		p.onProgress(pct)
	}
}
