package main

import (
	"flag"
	"fmt"
	"log"
	"math/rand"
	"os"
	"runtime"
	"strconv"
	"time"

	"code.cloudfoundry.org/bytefmt"
	"github.com/olekukonko/tablewriter"
	"github.com/shirou/gopsutil/cpu"
	"github.com/shirou/gopsutil/mem"

	"github.com/spacemeshos/bits/bitfield"
)

type testCase struct {
	name  string
	bytes uint64 // bytes touched per iteration
	run   func(bf *bitfield.BitField)
}

func main() {
	size := flag.Int("size", 1<<12, "buffer size, in bytes")
	iterations := flag.Int("iterations", 1<<10, "iterations per test")
	seed := flag.Int64("seed", 1, "seed of the random buffer content")
	flag.Parse()

	if *size < 8 {
		log.Fatalf("invalid size %d; expected: >= 8", *size)
	}

	log.Printf("bench config: size: %v, iterations: %v", bytefmt.ByteSize(uint64(*size)), *iterations)

	bf := genBuffer(*size, *seed)
	cases := genTestCases(*size)
	data := make([][]string, 0, len(cases))

	for i, tc := range cases {
		log.Printf("test %v/%v (%v) starting...", i+1, len(cases), tc.name)

		t := time.Now()
		for n := 0; n < *iterations; n++ {
			tc.run(bf)
		}
		elapsed := time.Since(t)

		perOp := elapsed / time.Duration(*iterations)
		throughput := uint64(float64(tc.bytes) * float64(*iterations) / elapsed.Seconds())

		log.Printf("test %v/%v completed, %v", i+1, len(cases), elapsed)

		data = append(data, []string{
			tc.name,
			strconv.Itoa(*iterations),
			elapsed.Round(time.Millisecond).String(),
			perOp.String(),
			bytefmt.ByteSize(throughput) + "/s",
		})
	}

	header := []string{"test", "iterations", "elapsed", "per-op", "throughput"}
	report(*size, header, data)
}

func report(size int, header []string, data [][]string) {
	fmt.Printf("\n\nBENCHMARKS: size=%v, %v\n", bytefmt.ByteSize(uint64(size)), machine())

	table := tablewriter.NewWriter(os.Stdout)
	table.SetHeader(header)
	table.SetBorder(true)
	table.AppendBulk(data)
	table.Render()
}

func machine() string {
	model := "unknown cpu"
	if info, err := cpu.Info(); err == nil && len(info) > 0 {
		model = info[0].ModelName
	}
	total := "unknown"
	if vm, err := mem.VirtualMemory(); err == nil {
		total = bytefmt.ByteSize(vm.Total)
	}
	return fmt.Sprintf("cpu=%v (%d threads), memory=%v", model, runtime.NumCPU(), total)
}

func genBuffer(size int, seed int64) *bitfield.BitField {
	b := make([]byte, size)
	rand.New(rand.NewSource(seed)).Read(b)
	return bitfield.FromBytes(b)
}

// genTestCases returns the insert and retrieve cases, walking the buffer in
// 64-bit strides either aligned or with an unaligned 23-bit range, and the
// 7-bit shift cases.
func genTestCases(size int) []testCase {
	last := uint(size*8 - 64)
	walk := func(from, width uint, fn func(bf *bitfield.BitField, start, stop uint)) func(bf *bitfield.BitField) {
		return func(bf *bitfield.BitField) {
			for start := from; start <= last; start += 64 {
				fn(bf, start, start+width-1)
			}
		}
	}
	insert := func(bf *bitfield.BitField, start, stop uint) {
		if err := bf.Insert(0xa5a5a5a5a5a5a5a5, start, stop); err != nil {
			panic(err)
		}
	}
	retrieve := func(bf *bitfield.BitField, start, stop uint) {
		if _, err := bf.Retrieve(start, stop); err != nil {
			panic(err)
		}
	}

	return []testCase{
		{"insert", uint64(size), walk(0, 64, insert)},
		{"insert-unaligned", uint64(size), walk(5, 23, insert)},
		{"retrieve", uint64(size), walk(0, 64, retrieve)},
		{"retrieve-unaligned", uint64(size), walk(5, 23, retrieve)},
		{"shift-right", uint64(size), func(bf *bitfield.BitField) { bf.ShiftRight(7) }},
		{"shift-left", uint64(size), func(bf *bitfield.BitField) { bf.ShiftLeft(7) }},
	}
}
