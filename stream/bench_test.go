package stream_test

import (
	"bytes"
	"io"
	"testing"

	wavevortex "github.com/1878580314/wave-vortex"
	"github.com/1878580314/wave-vortex/stream"
)

func benchmarkEncryptStreamCtx(b *testing.B, size int) {
	ctx := wavevortex.NewCipherCtx(testKey(1))
	pt := make([]byte, size)
	for i := range pt {
		pt[i] = byte(i)
	}

	b.SetBytes(int64(size))
	b.ReportAllocs()
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		if err := stream.EncryptStreamCtx(io.Discard, bytes.NewReader(pt), ctx); err != nil {
			b.Fatal(err)
		}
	}
}

func BenchmarkEncryptStreamCtx1KiB(b *testing.B) { benchmarkEncryptStreamCtx(b, 1024) }
func BenchmarkEncryptStreamCtx64KiB(b *testing.B) { benchmarkEncryptStreamCtx(b, 64*1024) }
func BenchmarkEncryptStreamCtx1MiB(b *testing.B) { benchmarkEncryptStreamCtx(b, 1024*1024) }

func BenchmarkDecryptStreamCtx(b *testing.B) {
	ctx := wavevortex.NewCipherCtx(testKey(1))
	pt := make([]byte, 64*1024)
	for i := range pt {
		pt[i] = byte(i)
	}

	var ciphertext bytes.Buffer
	if err := stream.EncryptStreamCtx(&ciphertext, bytes.NewReader(pt), ctx); err != nil {
		b.Fatal(err)
	}
	ctBytes := ciphertext.Bytes()

	b.SetBytes(int64(len(pt)))
	b.ReportAllocs()
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		if err := stream.DecryptStreamCtx(io.Discard, bytes.NewReader(ctBytes), ctx); err != nil {
			b.Fatal(err)
		}
	}
}
