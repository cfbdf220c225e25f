// Copyright 2015 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package bitstream

import (
	"bytes"
	"errors"
	"io"
	"math/rand"
	"strings"
	"testing"

	gobitstream "github.com/dgryski/go-bitstream"
)

type field struct {
	n int
	v uint32
}

func TestWriterMSBFirst(t *testing.T) {
	tests := []struct {
		fields []field
		want   []byte
	}{
		{[]field{{1, 1}, {3, 2}, {4, 9}}, []byte{0xa9}},
		{[]field{{32, 0xface8201}}, []byte{0xfa, 0xce, 0x82, 0x01}},
		{[]field{{1, 1}}, []byte{0x80}},
		{[]field{{9, 256}, {1, 1}}, []byte{0x80, 0x40}},
		{[]field{{4, 0xff}}, []byte{0xf0}}, // high bits of v ignored
		{nil, nil},
	}
	for i, tt := range tests {
		var buf bytes.Buffer
		w := NewWriter(&buf)
		for _, f := range tt.fields {
			if err := w.WriteBits(f.n, f.v); err != nil {
				t.Fatalf("%d. WriteBits(%d, %#x) = %v", i, f.n, f.v, err)
			}
		}
		if err := w.Close(); err != nil {
			t.Fatalf("%d. Close = %v", i, err)
		}
		if got := buf.Bytes(); !bytes.Equal(got, tt.want) {
			t.Errorf("%d. wrote % x; want % x", i, got, tt.want)
		}
	}
}

func TestReaderFields(t *testing.T) {
	r := NewReader(strings.NewReader("\xa9\xfa\xce\x82\x01"))
	for _, f := range []field{{1, 1}, {3, 2}, {4, 9}, {32, 0xface8201}} {
		v, err := r.ReadBits(f.n)
		if err != nil {
			t.Fatalf("ReadBits(%d) = %v", f.n, err)
		}
		if v != f.v {
			t.Errorf("ReadBits(%d) = %#x; want %#x", f.n, v, f.v)
		}
	}
	if got, want := r.BitsRead(), int64(40); got != want {
		t.Errorf("BitsRead = %d; want %d", got, want)
	}
	if _, err := r.ReadBits(1); err != io.EOF {
		t.Errorf("ReadBits past end = %v; want io.EOF", err)
	}
}

func TestReaderShortField(t *testing.T) {
	r := NewReader(bytes.NewReader([]byte{0xff}))
	if _, err := r.ReadBits(9); err != io.EOF {
		t.Errorf("ReadBits(9) on one byte = %v; want io.EOF", err)
	}
}

func TestReaderBits(t *testing.T) {
	r := NewReader(bytes.NewReader([]byte{0x5a}))
	var got []bool
	for {
		b, err := r.ReadBit()
		if err == io.EOF {
			break
		}
		if err != nil {
			t.Fatal(err)
		}
		got = append(got, b)
	}
	want := []bool{false, true, false, true, true, false, true, false}
	if len(got) != len(want) {
		t.Fatalf("read %d bits; want %d", len(got), len(want))
	}
	for i := range want {
		if got[i] != want[i] {
			t.Errorf("bit %d = %v; want %v", i, got[i], want[i])
		}
	}
}

func TestReaderReset(t *testing.T) {
	src := bytes.NewReader([]byte{0x00, 0x12, 0x34})
	if _, err := src.Seek(1, io.SeekStart); err != nil {
		t.Fatal(err)
	}
	r := NewReader(src)
	first, err := r.ReadBits(16)
	if err != nil {
		t.Fatal(err)
	}
	if err := r.Reset(); err != nil {
		t.Fatalf("Reset = %v", err)
	}
	if r.BitsRead() != 0 {
		t.Errorf("BitsRead after Reset = %d; want 0", r.BitsRead())
	}
	again, err := r.ReadBits(16)
	if err != nil {
		t.Fatal(err)
	}
	if first != 0x1234 || again != first {
		t.Errorf("read %#x then %#x; want 0x1234 twice", first, again)
	}
}

type onlyReader struct{ io.Reader }

func TestResetNotSeekable(t *testing.T) {
	r := NewReader(onlyReader{strings.NewReader("x")})
	if err := r.Reset(); !errors.Is(err, ErrNotSeekable) {
		t.Errorf("Reset = %v; want ErrNotSeekable", err)
	}
}

func TestWidth(t *testing.T) {
	r := NewReader(strings.NewReader("abcdefgh"))
	w := NewWriter(io.Discard)
	for _, n := range []int{0, -1, 33} {
		if _, err := r.ReadBits(n); !errors.Is(err, ErrWidth) {
			t.Errorf("ReadBits(%d) = %v; want ErrWidth", n, err)
		}
		if err := w.WriteBits(n, 0); !errors.Is(err, ErrWidth) {
			t.Errorf("WriteBits(%d) = %v; want ErrWidth", n, err)
		}
	}
}

func TestWriteAfterClose(t *testing.T) {
	w := NewWriter(io.Discard)
	if err := w.Close(); err != nil {
		t.Fatal(err)
	}
	if err := w.WriteBits(1, 1); err == nil {
		t.Error("WriteBits after Close succeeded")
	}
	if err := w.Close(); err != nil {
		t.Errorf("second Close = %v", err)
	}
}

// TestInterop checks the writer against an independent MSB-first
// reader and the reader against an independent writer.
func TestInterop(t *testing.T) {
	rng := rand.New(rand.NewSource(0x5a025ca1))
	fields := make([]field, 500)
	for i := range fields {
		n := 1 + rng.Intn(maxWidth)
		fields[i] = field{n, uint32(rng.Uint64() & (1<<uint(n) - 1))}
	}

	var ours bytes.Buffer
	w := NewWriter(&ours)
	for _, f := range fields {
		if err := w.WriteBits(f.n, f.v); err != nil {
			t.Fatal(err)
		}
	}
	if err := w.Close(); err != nil {
		t.Fatal(err)
	}
	gr := gobitstream.NewReader(bytes.NewReader(ours.Bytes()))
	for i, f := range fields {
		v, err := gr.ReadBits(f.n)
		if err != nil {
			t.Fatalf("field %d: go-bitstream ReadBits = %v", i, err)
		}
		if uint32(v) != f.v {
			t.Fatalf("field %d: go-bitstream read %#x; want %#x", i, v, f.v)
		}
	}

	var theirs bytes.Buffer
	gw := gobitstream.NewWriter(&theirs)
	for _, f := range fields {
		if err := gw.WriteBits(uint64(f.v), f.n); err != nil {
			t.Fatal(err)
		}
	}
	if err := gw.Flush(gobitstream.Zero); err != nil {
		t.Fatal(err)
	}
	if !bytes.Equal(theirs.Bytes(), ours.Bytes()) {
		t.Fatalf("go-bitstream wrote % x; we wrote % x", theirs.Bytes(), ours.Bytes())
	}
	r := NewReader(bytes.NewReader(theirs.Bytes()))
	for i, f := range fields {
		v, err := r.ReadBits(f.n)
		if err != nil {
			t.Fatalf("field %d: ReadBits = %v", i, err)
		}
		if v != f.v {
			t.Fatalf("field %d: read %#x; want %#x", i, v, f.v)
		}
	}
}
