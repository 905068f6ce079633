package main

import (
	"io"

	"github.com/CodisLabs/codis/pkg/utils/sync2/atomic2"
)

type ReaderBuilder struct {
	io.Reader
}

func rBuilder(r io.Reader) *ReaderBuilder {
	return &ReaderBuilder{r}
}

func (b *ReaderBuilder) Count(p *atomic2.Int64) *ReaderBuilder {
	b.Reader = &CountReader{b.Reader, p}
	return b
}

type CountReader struct {
	io.Reader
	N *atomic2.Int64
}

func (r *CountReader) Read(b []byte) (int, error) {
	n, err := r.Reader.Read(b)
	r.N.Add(int64(n))
	return n, err
}

type WriterBuilder struct {
	io.Writer
}

func wBuilder(w io.Writer) *WriterBuilder {
	return &WriterBuilder{w}
}

func (b *WriterBuilder) Count(p *atomic2.Int64) *WriterBuilder {
	b.Writer = &CountWriter{b.Writer, p}
	return b
}

type CountWriter struct {
	io.Writer
	N *atomic2.Int64
}

func (w *CountWriter) Write(b []byte) (int, error) {
	n, err := w.Writer.Write(b)
	w.N.Add(int64(n))
	return n, err
}
