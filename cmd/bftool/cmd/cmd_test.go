package cmd

import (
	"bytes"
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/spf13/cobra"
	"github.com/stretchr/testify/require"

	"github.com/spacemeshos/bits/bitfield"
	"github.com/spacemeshos/bits/config"
	"github.com/spacemeshos/bits/persistence"
	"github.com/spacemeshos/bits/shared"
	"github.com/spacemeshos/bits/verifying"
)

func execute(t *testing.T, args ...string) (string, error) {
	t.Helper()

	var out bytes.Buffer
	rootCmd.SetOut(&out)
	rootCmd.SetErr(&out)
	rootCmd.SetArgs(args)
	err := rootCmd.ExecuteContext(context.Background())
	return out.String(), err
}

func TestInsertRetrieve(t *testing.T) {
	r := require.New(t)
	path := filepath.Join(t.TempDir(), "field.bin")

	_, err := execute(t, "new", path, "--size", "4")
	r.NoError(err)

	_, err = execute(t, "insert", path, "0xa5a5a5a5", "5", "27", "--width", "32")
	r.NoError(err)

	bf, err := persistence.Load(path, persistence.Raw)
	r.NoError(err)
	r.Equal([]byte{0x02, 0x5a, 0x5a, 0x50}, bf.Bytes())

	out, err := execute(t, "retrieve", path, "5", "27", "--width", "32")
	r.NoError(err)
	r.Equal("2467237 (0x25a5a5)\n", out)

	out, err = execute(t, "dump", path)
	r.NoError(err)
	r.Contains(out, "00000010 01011010 01011010 01010000")
	r.Contains(out, "025a 5a50")
}

func TestInsertErrors(t *testing.T) {
	r := require.New(t)
	path := filepath.Join(t.TempDir(), "field.bfx")

	_, err := execute(t, "new", path, "--bits", "20")
	r.NoError(err)
	bf, err := persistence.Load(path, persistence.Envelope)
	r.NoError(err)
	r.Equal(3, bf.Len())

	_, err = execute(t, "insert", path, "1", "16", "47", "--width", "64")
	r.ErrorIs(err, bitfield.ErrInvalidIndex)

	_, err = execute(t, "insert", path, "1", "0", "8", "--width", "8")
	r.ErrorIs(err, bitfield.ErrExceededDataRange)

	_, err = execute(t, "insert", path, "256", "0", "7", "--width", "8")
	r.Error(err)

	_, err = execute(t, "insert", path, "1", "0", "7", "--width", "12")
	r.EqualError(err, "invalid width 12; expected: 8, 16, 32 or 64")

	_, err = execute(t, "retrieve", path, "9", "8", "--width", "64")
	r.ErrorIs(err, bitfield.ErrNegativeRange)
}

func TestCombineShiftNot(t *testing.T) {
	r := require.New(t)
	dir := t.TempDir()
	a, b := filepath.Join(dir, "a.bin"), filepath.Join(dir, "b.bfx")
	out := filepath.Join(dir, "out.bin")

	r.NoError(persistence.Save(a, bitfield.FromBytes([]byte{0xa5, 0xa5}), persistence.Raw))
	r.NoError(persistence.Save(b, bitfield.FromBytes([]byte{0xcc, 0xcc, 0xcc, 0xcc}), persistence.Envelope))

	expected := map[string][]byte{
		"and": {0x00, 0x00, 0x84, 0x84},
		"or":  {0xcc, 0xcc, 0xed, 0xed},
		"xor": {0xcc, 0xcc, 0x69, 0x69},
	}
	for op, want := range expected {
		_, err := execute(t, "combine", op, a, b, out)
		r.NoError(err)
		bf, err := persistence.Load(out, persistence.Raw)
		r.NoError(err)
		r.Equal(want, bf.Bytes(), op)
	}

	_, err := execute(t, "combine", "nand", a, b, out)
	r.Error(err)

	r.NoError(persistence.Save(a, bitfield.FromBytes([]byte{0xa5, 0xa5, 0xa5, 0xa5}), persistence.Raw))
	_, err = execute(t, "shift", "right", a, "7", out)
	r.NoError(err)
	bf, err := persistence.Load(out, persistence.Raw)
	r.NoError(err)
	r.Equal([]byte{0x01, 0x4b, 0x4b, 0x4b}, bf.Bytes())

	_, err = execute(t, "shift", "left", a, "7", out)
	r.NoError(err)
	bf, err = persistence.Load(out, persistence.Raw)
	r.NoError(err)
	r.Equal([]byte{0xd2, 0xd2, 0xd2, 0x80}, bf.Bytes())

	_, err = execute(t, "shift", "up", a, "7", out)
	r.Error(err)

	_, err = execute(t, "not", a, out)
	r.NoError(err)
	bf, err = persistence.Load(out, persistence.Raw)
	r.NoError(err)
	r.Equal([]byte{0x5a, 0x5a, 0x5a, 0x5a}, bf.Bytes())
}

func TestVerify(t *testing.T) {
	r := require.New(t)

	out, err := execute(t, "verify", "--capacity", "3", "--valuebits", "9", "--offsets", "16", "--numvalues", "512", "--noninterference")
	r.NoError(err)
	r.Contains(out, "8192")
	r.Equal(uint(3), cfg.Capacity)
	r.Equal(uint(9), cfg.ValueBits)

	_, err = execute(t, "verify", "--capacity", "1", "--valuebits", "9", "--offsets", "1", "--numvalues", "1")
	r.Error(err)
}

func TestLoadConfig(t *testing.T) {
	r := require.New(t)

	file := filepath.Join(t.TempDir(), "bits.json")
	r.NoError(os.WriteFile(file, []byte(`{"capacity": 32, "valuebits": 64, "lograte": 7}`), 0o600))

	c := &cobra.Command{}
	c.Flags().Uint("capacity", config.DefaultCapacity, "")
	c.Flags().Uint("valuebits", config.DefaultValueBits, "")
	c.Flags().Uint("offsets", config.DefaultOffsets, "")
	c.Flags().Uint64("lograte", config.DefaultLogRate, "")
	r.NoError(c.Flags().Set("valuebits", "12"))

	loaded, err := loadConfig(c, file)
	r.NoError(err)
	r.Equal(uint(32), loaded.Capacity)
	r.Equal(uint(12), loaded.ValueBits)
	r.Equal(uint64(7), loaded.LogRate)
	r.Equal(uint(config.DefaultOffsets), loaded.Offsets)

	_, err = loadConfig(c, filepath.Join(t.TempDir(), "missing.json"))
	r.Error(err)
}

func TestSaveFaults(t *testing.T) {
	r := require.New(t)
	dir := filepath.Join(t.TempDir(), "faults")

	faults := []verifying.Fault{{Offset: 3, Value: 0xab, Got: 0xaa, Snapshot: []byte{0x15, 0x40}}}
	r.NoError(saveFaults(dir, faults))

	bf, err := persistence.Load(filepath.Join(dir, "fault_3_ab.bfx"), persistence.Envelope)
	r.NoError(err)
	r.Equal([]byte{0x15, 0x40}, bf.Bytes())
}

func TestRunVerify(t *testing.T) {
	r := require.New(t)

	c := config.DefaultConfig()
	c.NumValues = 256
	var out bytes.Buffer
	r.NoError(runVerify(context.Background(), &out, c, shared.NoopLogger{}, false))
	r.Contains(out.String(), "2048")

	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	r.ErrorIs(runVerify(ctx, &out, c, shared.NoopLogger{}, false), context.Canceled)
}
