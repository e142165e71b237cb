/*
Copyright (c) 2017 Simon Schmidt

Permission is hereby granted, free of charge, to any person obtaining a copy
of this software and associated documentation files (the "Software"), to deal
in the Software without restriction, including without limitation the rights
to use, copy, modify, merge, publish, distribute, sublicense, and/or sell
copies of the Software, and to permit persons to whom the Software is
furnished to do so, subject to the following conditions:

The above copyright notice and this permission notice shall be included in all
copies or substantial portions of the Software.

THE SOFTWARE IS PROVIDED "AS IS", WITHOUT WARRANTY OF ANY KIND, EXPRESS OR
IMPLIED, INCLUDING BUT NOT LIMITED TO THE WARRANTIES OF MERCHANTABILITY,
FITNESS FOR A PARTICULAR PURPOSE AND NONINFRINGEMENT. IN NO EVENT SHALL THE
AUTHORS OR COPYRIGHT HOLDERS BE LIABLE FOR ANY CLAIM, DAMAGES OR OTHER
LIABILITY, WHETHER IN AN ACTION OF CONTRACT, TORT OR OTHERWISE, ARISING FROM,
OUT OF OR IN CONNECTION WITH THE SOFTWARE OR THE USE OR OTHER DEALINGS IN THE
SOFTWARE.
*/


// Command huffpack compresses and decompresses files with huffmanfile.
//
//	huffpack [-v] [-bufsize n] compress <in> <out>
//	huffpack [-v] [-bufsize n] decompress <in> <out>
//	huffpack [-v] codes <in>
package main

import (
	"bufio"
	"flag"
	"fmt"
	"io"
	"os"

	"github.com/cespare/xxhash/v2"
	"github.com/pkg/errors"

	"github.com/maxymania/huffpack/huffmanblock"
	"github.com/maxymania/huffpack/huffmanfile"
	"github.com/maxymania/huffpack/logger"
)

const defaultBufSize = 1 << 20

type config struct {
	verbose bool
	bufSize int
}

func main() {
	os.Exit(run(os.Args[1:], os.Stdout, logger.New()))
}

func run(args []string, stdout io.Writer, log logger.Logger) int {
	fs := flag.NewFlagSet("huffpack", flag.ContinueOnError)
	var cfg config
	fs.BoolVar(&cfg.verbose, "v", false, "log xxhash digests of the plain data and dump the tree")
	fs.IntVar(&cfg.bufSize, "bufsize", defaultBufSize, "buffer size for file IO")
	fs.Usage = func() {
		fmt.Fprintln(fs.Output(), "usage: huffpack [flags] compress|decompress <in> <out>")
		fmt.Fprintln(fs.Output(), "       huffpack [flags] codes <in>")
		fs.PrintDefaults()
	}
	if err := fs.Parse(args); err != nil {
		return 2
	}
	if cfg.bufSize <= 0 {
		log.Errorf("bufsize must be positive, got %d", cfg.bufSize)
		return 2
	}

	var err error
	switch cmd := fs.Arg(0); {
	case cmd == "compress" && fs.NArg() == 3:
		err = compressFile(fs.Arg(1), fs.Arg(2), cfg, log)
	case cmd == "decompress" && fs.NArg() == 3:
		err = decompressFile(fs.Arg(1), fs.Arg(2), cfg, log)
	case cmd == "codes" && fs.NArg() == 2:
		err = printCodes(fs.Arg(1), stdout, cfg)
	default:
		fs.Usage()
		return 2
	}
	if err != nil {
		log.Errorf("%s: %v", fs.Arg(0), err)
		return 1
	}
	return 0
}

func compressFile(in, out string, cfg config, log logger.Logger) (err error) {
	src, err := os.Open(in)
	if err != nil {
		return errors.WithStack(err)
	}
	defer src.Close()
	dst, err := os.Create(out)
	if err != nil {
		return errors.WithStack(err)
	}
	defer func() {
		if e := dst.Close(); err == nil {
			err = errors.WithStack(e)
		}
	}()

	w := bufio.NewWriterSize(dst, cfg.bufSize)
	if err = huffmanfile.Compress(src, w); err != nil {
		return err
	}
	if err = w.Flush(); err != nil {
		return errors.WithStack(err)
	}
	plain, packed, err := sizes(src, dst)
	if err != nil {
		return err
	}
	log.Infof("compress %s: %d -> %d bytes (%s)", in, plain, packed, ratio(packed, plain))

	if cfg.verbose {
		if _, err = src.Seek(0, io.SeekStart); err != nil {
			return errors.WithStack(err)
		}
		d := xxhash.New()
		if _, err = io.Copy(d, bufio.NewReaderSize(src, cfg.bufSize)); err != nil {
			return errors.WithStack(err)
		}
		log.Infof("compress %s: xxh64 %016x", in, d.Sum64())
	}
	return nil
}

func decompressFile(in, out string, cfg config, log logger.Logger) (err error) {
	src, err := os.Open(in)
	if err != nil {
		return errors.WithStack(err)
	}
	defer src.Close()
	dst, err := os.Create(out)
	if err != nil {
		return errors.WithStack(err)
	}
	defer func() {
		if e := dst.Close(); err == nil {
			err = errors.WithStack(e)
		}
	}()

	d := xxhash.New()
	w := bufio.NewWriterSize(dst, cfg.bufSize)
	if err = huffmanfile.Decompress(bufio.NewReaderSize(src, cfg.bufSize), io.MultiWriter(w, d)); err != nil {
		return err
	}
	if err = w.Flush(); err != nil {
		return errors.WithStack(err)
	}
	packed, plain, err := sizes(src, dst)
	if err != nil {
		return err
	}
	log.Infof("decompress %s: %d -> %d bytes (%s)", in, packed, plain, ratio(packed, plain))
	if cfg.verbose {
		log.Infof("decompress %s: xxh64 %016x", in, d.Sum64())
	}
	return nil
}

func printCodes(in string, stdout io.Writer, cfg config) error {
	data, err := os.ReadFile(in)
	if err != nil {
		return errors.WithStack(err)
	}
	a, err := huffmanblock.Analyze(data)
	if err != nil {
		return err
	}
	defer a.Release()

	for _, s := range a.Freq.Symbols() {
		fmt.Fprintf(stdout, "%-8v %10d %s\n", s, a.Freq[s], a.Codes[s])
	}
	st := a.Stats
	fmt.Fprintf(stdout, "%d bytes, %d symbols, header %d bytes, body %d bits, packed %d bytes (%s)\n",
		st.Plain, st.Symbols, st.Header, st.BodyBits, st.Packed(), ratio(int64(st.Packed()), int64(st.Plain)))
	if cfg.verbose {
		return a.Tree.Print(stdout)
	}
	return nil
}

func sizes(a, b *os.File) (int64, int64, error) {
	sa, err := a.Stat()
	if err != nil {
		return 0, 0, errors.WithStack(err)
	}
	sb, err := b.Stat()
	if err != nil {
		return 0, 0, errors.WithStack(err)
	}
	return sa.Size(), sb.Size(), nil
}

func ratio(packed, plain int64) string {
	if plain == 0 {
		return "n/a"
	}
	return fmt.Sprintf("%.1f%%", 100*float64(packed)/float64(plain))
}
