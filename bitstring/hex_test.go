package bitstring

import (
	"math/rand"
	"strconv"
	"strings"
	"testing"

	"github.com/intel/rsp-sw-toolkit-im-suite-expect"
)

func TestToHex(t *testing.T) {
	w := expect.WrapT(t)

	w.ShouldBeEqual(w.ShouldHaveResult(ToHex("0")).(string), "0")
	w.ShouldBeEqual(w.ShouldHaveResult(ToHex("1")).(string), "1")
	w.ShouldBeEqual(w.ShouldHaveResult(ToHex("00110000")).(string), "30")
	w.ShouldBeEqual(w.ShouldHaveResult(ToHex("1010")).(string), "A")

	// the integer form drops leading zeros, even for wide strings
	w.ShouldBeEqual(w.ShouldHaveResult(ToHex(strings.Repeat("0", 96))).(string), "0")
	w.ShouldBeEqual(w.ShouldHaveResult(ToHex(strings.Repeat("0", 95)+"1")).(string), "1")

	w.ShouldHaveError(ToHex(""))
	w.ShouldHaveError(ToHex("012"))
}

func TestFromHex(t *testing.T) {
	w := expect.WrapT(t)

	w.ShouldBeEqual(w.ShouldHaveResult(FromHex("30", 8)).(string), "00110000")
	w.ShouldBeEqual(w.ShouldHaveResult(FromHex("A", 4)).(string), "1010")
	w.ShouldBeEqual(w.ShouldHaveResult(FromHex("a", 4)).(string), "1010")
	w.ShouldBeEqual(w.ShouldHaveResult(FromHex("0", 96)).(string), strings.Repeat("0", 96))

	// restores the leading zeros the integer form dropped
	w.ShouldBeEqual(w.ShouldHaveResult(FromHex("1A85", 96)).(string),
		strings.Repeat("0", 83)+"1101010000101")

	// value needs more bits than are available
	w.ShouldHaveError(FromHex("100", 8))
	w.ShouldHaveError(FromHex("2", 1))

	w.ShouldHaveError(FromHex("", 8))
	w.ShouldHaveError(FromHex("0x30", 8))
	w.ShouldHaveError(FromHex("XYZ", 96))
	w.ShouldHaveError(FromHex("-1F", 96))
	w.ShouldHaveError(FromHex("1F 2B", 96))
	w.ShouldHaveError(FromHex("30", 0))
	w.ShouldHaveError(FromHex("30", -8))
}

func TestHex_roundTrip(t *testing.T) {
	w := expect.WrapT(t).StopOnMismatch()

	// a 96-bit identifier survives hex and back unchanged
	bits := w.ShouldHaveResult(FromHex("3074257BF7194E4000001A85", 96)).(string)
	w.ShouldHaveLength(bits, 96)
	w.ShouldBeEqual(w.ShouldHaveResult(ToHex(bits)).(string), "3074257BF7194E4000001A85")

	rand.Seed(13)
	for i := 0; i < 1000; i++ {
		v := rand.Uint64()
		s := w.ShouldHaveResult(FormatUint(v, 64)).(string)

		h := w.ShouldHaveResult(ToHex(s)).(string)
		w.ShouldBeEqual(h, strings.ToUpper(strconv.FormatUint(v, 16)))
		w.ShouldBeEqual(w.ShouldHaveResult(FromHex(h, 64)).(string), s)
	}
}
