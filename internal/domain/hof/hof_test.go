package hof_test

import (
	"encoding/base64"
	"strings"
	"testing"

	"github.com/okian/levelgate/internal/domain/hof"
	"github.com/okian/levelgate/internal/domain/types"
	. "github.com/smartystreets/goconvey/convey"
)

func b64(s string) string {
	return base64.StdEncoding.EncodeToString([]byte(s))
}

func TestDecode(t *testing.T) {
	Convey("Given the hall-of-fame decoder", t, func() {
		Convey("When decoding the irregular header plus uniform pairs", func() {
			raw := strings.Join([]string{
				b64("ada"),
				"100/" + b64("ignored-tail"),
				"200/" + b64("bela"),
				"150/" + b64("cleo"),
			}, ",")
			rows := hof.Decode(raw)

			Convey("Then rows come back sorted, ranked, with the tail discarded", func() {
				So(rows, ShouldResemble, []types.HofRow{
					{Rank: "1st", Player: "bela", Score: 200},
					{Rank: "2nd", Player: "cleo", Score: 150},
					{Rank: "3rd", Player: "ada", Score: 100},
				})
			})

			Convey("And the header tail never contributes a row", func() {
				for _, row := range rows {
					So(row.Player, ShouldNotEqual, "ignored-tail")
				}
			})
		})

		Convey("When the header score token has no slash", func() {
			rows := hof.Decode(b64("solo") + ",250")

			Convey("Then the whole token is the score", func() {
				So(rows, ShouldResemble, []types.HofRow{
					{Rank: "1st", Player: "solo", Score: 250},
				})
			})
		})

		Convey("When fewer than two tokens exist", func() {
			So(hof.Decode(""), ShouldBeEmpty)
			So(hof.Decode(b64("lonely")), ShouldBeEmpty)
		})

		Convey("When individual pairs are malformed", func() {
			raw := strings.Join([]string{
				b64("ada"),
				"100/x",
				"oops/" + b64("bela"), // unparseable score
				"90/" + b64("   "),    // whitespace-only name
				"80/" + b64("cleo"),
				"notapair", // no slash at all
			}, ",")
			rows := hof.Decode(raw)

			Convey("Then only the broken pairs are dropped", func() {
				So(rows, ShouldResemble, []types.HofRow{
					{Rank: "1st", Player: "ada", Score: 100},
					{Rank: "2nd", Player: "cleo", Score: 80},
				})
			})
		})

		Convey("When the header itself is malformed", func() {
			raw := strings.Join([]string{
				b64("  "), // name decodes to whitespace
				"100/tail",
				"50/" + b64("dana"),
			}, ",")
			rows := hof.Decode(raw)

			Convey("Then decoding continues with the remaining pairs", func() {
				So(rows, ShouldResemble, []types.HofRow{
					{Rank: "1st", Player: "dana", Score: 50},
				})
			})
		})

		Convey("When scores tie", func() {
			raw := strings.Join([]string{
				b64("p100"),
				"100/tail",
				"90/" + b64("first90"),
				"90/" + b64("second90"),
				"80/" + b64("p80"),
			}, ",")
			rows := hof.Decode(raw)

			Convey("Then competition ranking skips positions after a tie", func() {
				So(rows, ShouldHaveLength, 4)
				So(rows[0].Rank, ShouldEqual, "1st")
				So(rows[1].Rank, ShouldEqual, "2nd")
				So(rows[2].Rank, ShouldEqual, "2nd")
				So(rows[3].Rank, ShouldEqual, "4th")
			})

			Convey("And tied rows keep their input order", func() {
				So(rows[1].Player, ShouldEqual, "first90")
				So(rows[2].Player, ShouldEqual, "second90")
			})
		})

		Convey("When decoding the same body twice", func() {
			raw := strings.Join([]string{
				b64("ada"), "10/t", "30/" + b64("bela"), "30/" + b64("cleo"),
			}, ",")
			first := hof.Decode(raw)
			second := hof.Decode(raw)

			So(second, ShouldResemble, first)
		})
	})
}

func TestOrdinal(t *testing.T) {
	Convey("Given the English ordinal renderer", t, func() {
		cases := map[int]string{
			1:   "1st",
			2:   "2nd",
			3:   "3rd",
			4:   "4th",
			10:  "10th",
			11:  "11th",
			12:  "12th",
			13:  "13th",
			21:  "21st",
			22:  "22nd",
			23:  "23rd",
			101: "101st",
			111: "111th",
			112: "112th",
			113: "113th",
			121: "121st",
		}

		Convey("When rendering representative ranks", func() {
			for n, want := range cases {
				So(hof.Ordinal(n), ShouldEqual, want)
			}
		})
	})
}
