package api_test

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/okian/levelgate/internal/adapters/http/api"
	"github.com/okian/levelgate/internal/domain/types"
	. "github.com/smartystreets/goconvey/convey"
)

// Mock implementations for testing
type mockDependencies struct {
	list       types.LevelList
	listErr    error
	rows       []types.HofRow
	rowsErr    error
	lastPage   int
	lastLevels string
	lastHof    string
}

func (m *mockDependencies) Levels(_ context.Context, page int) (types.LevelList, error) {
	m.lastPage = page
	if m.listErr != nil {
		return types.LevelList{}, m.listErr
	}
	return m.list, nil
}

func (m *mockDependencies) HallOfFame(context.Context) ([]types.HofRow, error) {
	if m.rowsErr != nil {
		return nil, m.rowsErr
	}
	return m.rows, nil
}

func (m *mockDependencies) DecodeLevels(raw string) types.LevelList {
	m.lastLevels = raw
	return m.list
}

func (m *mockDependencies) DecodeHallOfFame(raw string) []types.HofRow {
	m.lastHof = raw
	return m.rows
}

type mockStatsProvider struct {
	stats map[string]interface{}
}

func (m *mockStatsProvider) GetStats() map[string]interface{} {
	return m.stats
}

func newTestDeps() *mockDependencies {
	return &mockDependencies{
		list: types.LevelList{
			Entries: []types.LevelEntry{{ID: "cave-run", Author: "mira"}},
			HasMore: true,
		},
		rows: []types.HofRow{
			{Rank: "1st", Player: "bela", Score: 200},
			{Rank: "2nd", Player: "cleo", Score: 150},
		},
	}
}

func TestServer_Register(t *testing.T) {
	Convey("Given a new API server", t, func() {
		deps := newTestDeps()
		statsProvider := &mockStatsProvider{stats: map[string]interface{}{}}
		server := api.NewServer(deps, statsProvider, 100, 1<<20)
		mux := http.NewServeMux()

		Convey("When registering routes", func() {
			server.Register(context.Background(), mux)

			Convey("Then the health endpoint responds with ok", func() {
				req := httptest.NewRequest("GET", "/healthz", nil)
				w := httptest.NewRecorder()
				mux.ServeHTTP(w, req)
				So(w.Code, ShouldEqual, http.StatusOK)
				So(w.Body.String(), ShouldContainSubstring, `"status":"ok"`)
			})

			Convey("And the metrics endpoint is accessible", func() {
				req := httptest.NewRequest("GET", "/metrics", nil)
				w := httptest.NewRecorder()
				mux.ServeHTTP(w, req)
				So(w.Code, ShouldEqual, http.StatusOK)
			})

			Convey("And the stats endpoint is accessible", func() {
				req := httptest.NewRequest("GET", "/stats", nil)
				w := httptest.NewRecorder()
				mux.ServeHTTP(w, req)
				So(w.Code, ShouldEqual, http.StatusOK)
			})

			Convey("And the levels endpoint is accessible", func() {
				req := httptest.NewRequest("GET", "/levels?page=2", nil)
				w := httptest.NewRecorder()
				mux.ServeHTTP(w, req)
				So(w.Code, ShouldEqual, http.StatusOK)
			})

			Convey("And the hall-of-fame endpoint is accessible", func() {
				req := httptest.NewRequest("GET", "/halloffame", nil)
				w := httptest.NewRecorder()
				mux.ServeHTTP(w, req)
				So(w.Code, ShouldEqual, http.StatusOK)
			})

			Convey("And the decode endpoints are accessible", func() {
				req := httptest.NewRequest("POST", "/decode/levels", strings.NewReader("levelId=YQ=="))
				w := httptest.NewRecorder()
				mux.ServeHTTP(w, req)
				So(w.Code, ShouldEqual, http.StatusOK)

				req = httptest.NewRequest("POST", "/decode/halloffame", strings.NewReader("YQ==,100/x"))
				w = httptest.NewRecorder()
				mux.ServeHTTP(w, req)
				So(w.Code, ShouldEqual, http.StatusOK)
			})

			Convey("And unknown paths fall through to 404", func() {
				req := httptest.NewRequest("GET", "/unknown", nil)
				w := httptest.NewRecorder()
				mux.ServeHTTP(w, req)
				So(w.Code, ShouldEqual, http.StatusNotFound)
			})
		})
	})
}

func TestLevelsHandler_HandleGetLevels(t *testing.T) {
	Convey("Given a levels handler", t, func() {
		deps := newTestDeps()
		handler := api.NewLevelsHandler(deps, 100)

		Convey("When requesting a page", func() {
			req := httptest.NewRequest("GET", "/levels?page=3", nil)
			w := httptest.NewRecorder()
			handler.HandleGetLevels(w, req)

			Convey("Then it returns the decoded listing", func() {
				So(w.Code, ShouldEqual, http.StatusOK)
				So(deps.lastPage, ShouldEqual, 3)

				var response types.LevelList
				err := json.NewDecoder(w.Body).Decode(&response)
				So(err, ShouldBeNil)
				So(response.HasMore, ShouldBeTrue)
				So(len(response.Entries), ShouldEqual, 1)
				So(response.Entries[0].ID, ShouldEqual, "cave-run")
			})
		})

		Convey("When no page is specified it defaults to the first", func() {
			req := httptest.NewRequest("GET", "/levels", nil)
			w := httptest.NewRecorder()
			handler.HandleGetLevels(w, req)

			So(w.Code, ShouldEqual, http.StatusOK)
			So(deps.lastPage, ShouldEqual, 0)
		})

		Convey("When the page is not a number", func() {
			req := httptest.NewRequest("GET", "/levels?page=abc", nil)
			w := httptest.NewRecorder()
			handler.HandleGetLevels(w, req)

			So(w.Code, ShouldEqual, http.StatusBadRequest)
		})

		Convey("When the page is negative", func() {
			req := httptest.NewRequest("GET", "/levels?page=-1", nil)
			w := httptest.NewRecorder()
			handler.HandleGetLevels(w, req)

			So(w.Code, ShouldEqual, http.StatusBadRequest)
		})

		Convey("When the page exceeds the maximum", func() {
			req := httptest.NewRequest("GET", "/levels?page=101", nil)
			w := httptest.NewRecorder()
			handler.HandleGetLevels(w, req)

			So(w.Code, ShouldEqual, http.StatusBadRequest)
		})

		Convey("When the upstream fails", func() {
			deps.listErr = fmt.Errorf("upstream down")
			req := httptest.NewRequest("GET", "/levels?page=0", nil)
			w := httptest.NewRecorder()
			handler.HandleGetLevels(w, req)

			So(w.Code, ShouldEqual, http.StatusBadGateway)
		})

		Convey("When using a non-GET method", func() {
			req := httptest.NewRequest("POST", "/levels", nil)
			w := httptest.NewRecorder()
			handler.HandleGetLevels(w, req)

			So(w.Code, ShouldEqual, http.StatusNotFound)
		})
	})
}

func TestHallOfFameHandler_HandleGetHallOfFame(t *testing.T) {
	Convey("Given a hall-of-fame handler", t, func() {
		deps := newTestDeps()
		handler := api.NewHallOfFameHandler(deps)

		Convey("When requesting the hall of fame", func() {
			req := httptest.NewRequest("GET", "/halloffame", nil)
			w := httptest.NewRecorder()
			handler.HandleGetHallOfFame(w, req)

			Convey("Then it returns the ranked rows", func() {
				So(w.Code, ShouldEqual, http.StatusOK)

				var response []types.HofRow
				err := json.NewDecoder(w.Body).Decode(&response)
				So(err, ShouldBeNil)
				So(len(response), ShouldEqual, 2)
				So(response[0].Rank, ShouldEqual, "1st")
				So(response[0].Player, ShouldEqual, "bela")
			})
		})

		Convey("When the table is empty a JSON array is still returned", func() {
			deps.rows = nil
			req := httptest.NewRequest("GET", "/halloffame", nil)
			w := httptest.NewRecorder()
			handler.HandleGetHallOfFame(w, req)

			So(w.Code, ShouldEqual, http.StatusOK)
			So(strings.TrimSpace(w.Body.String()), ShouldEqual, "[]")
		})

		Convey("When the upstream fails", func() {
			deps.rowsErr = fmt.Errorf("upstream down")
			req := httptest.NewRequest("GET", "/halloffame", nil)
			w := httptest.NewRecorder()
			handler.HandleGetHallOfFame(w, req)

			So(w.Code, ShouldEqual, http.StatusBadGateway)
		})
	})
}

func TestDecodeHandler(t *testing.T) {
	Convey("Given a decode handler", t, func() {
		deps := newTestDeps()
		handler := api.NewDecodeHandler(deps, 64)

		Convey("When posting a levels payload", func() {
			req := httptest.NewRequest("POST", "/decode/levels", strings.NewReader("levelId=YQ==&levelRating=3"))
			w := httptest.NewRecorder()
			handler.HandleDecodeLevels(w, req)

			Convey("Then the body reaches the decoder verbatim", func() {
				So(w.Code, ShouldEqual, http.StatusOK)
				So(deps.lastLevels, ShouldEqual, "levelId=YQ==&levelRating=3")
			})
		})

		Convey("When posting a hall-of-fame payload", func() {
			req := httptest.NewRequest("POST", "/decode/halloffame", strings.NewReader("YQ==,100/x"))
			w := httptest.NewRecorder()
			handler.HandleDecodeHallOfFame(w, req)

			So(w.Code, ShouldEqual, http.StatusOK)
			So(deps.lastHof, ShouldEqual, "YQ==,100/x")
		})

		Convey("When the decoder yields no rows a JSON array is still returned", func() {
			deps.rows = nil
			req := httptest.NewRequest("POST", "/decode/halloffame", strings.NewReader("x"))
			w := httptest.NewRecorder()
			handler.HandleDecodeHallOfFame(w, req)

			So(w.Code, ShouldEqual, http.StatusOK)
			So(strings.TrimSpace(w.Body.String()), ShouldEqual, "[]")
		})

		Convey("When the body exceeds the limit", func() {
			big := strings.Repeat("x", 200)
			req := httptest.NewRequest("POST", "/decode/levels", strings.NewReader(big))
			w := httptest.NewRecorder()
			handler.HandleDecodeLevels(w, req)

			So(w.Code, ShouldEqual, http.StatusRequestEntityTooLarge)
		})

		Convey("When using a non-POST method", func() {
			req := httptest.NewRequest("GET", "/decode/levels", nil)
			w := httptest.NewRecorder()
			handler.HandleDecodeLevels(w, req)

			So(w.Code, ShouldEqual, http.StatusNotFound)
		})
	})
}

func TestStatsHandler_HandleStats(t *testing.T) {
	Convey("Given a stats handler", t, func() {
		mockStats := &mockStatsProvider{
			stats: map[string]interface{}{
				"cached_pages": 3,
				"max_page":     100,
			},
		}
		handler := api.NewStatsHandler(mockStats)

		Convey("When handling a stats request", func() {
			req := httptest.NewRequest("GET", "/stats", nil)
			w := httptest.NewRecorder()
			handler.HandleStats(w, req)

			Convey("Then it returns the stats map", func() {
				So(w.Code, ShouldEqual, http.StatusOK)

				var response map[string]interface{}
				err := json.NewDecoder(w.Body).Decode(&response)
				So(err, ShouldBeNil)
				So(response["cached_pages"], ShouldEqual, 3)
				So(response["max_page"], ShouldEqual, 100)
			})
		})
	})
}

func TestHealthHandler_HandleHealth(t *testing.T) {
	Convey("Given a health handler", t, func() {
		handler := api.NewHealthHandler()

		Convey("When handling a health check request", func() {
			req := httptest.NewRequest("GET", "/healthz", nil)
			w := httptest.NewRecorder()
			handler.HandleHealth(w, req)

			So(w.Code, ShouldEqual, http.StatusOK)
			So(w.Header().Get("Content-Type"), ShouldContainSubstring, "application/json")
		})
	})
}
