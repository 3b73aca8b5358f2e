package main

import (
	"context"
	"encoding/json"
	"errors"
	"io"
	"log"
	"net/http"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/rs/cors"

	"github.com/elastic/go-elasticsearch/v8/esutil"
	"github.com/google/uuid"
	"github.com/joho/godotenv"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"gorm.io/datatypes"

	"github.com/sirdesai22/campus-events/internal/dashboard"
	"github.com/sirdesai22/campus-events/internal/db"
	"github.com/sirdesai22/campus-events/internal/elastic"
	"github.com/sirdesai22/campus-events/internal/metrics"
	"github.com/sirdesai22/campus-events/internal/models"
	"github.com/sirdesai22/campus-events/internal/services"
	"github.com/sirdesai22/campus-events/internal/workers"
)

func writeError(w http.ResponseWriter, status int, msg string) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(map[string]string{"error": msg})
}

// isAdmin trusts the role resolved by the auth gateway upstream; session
// handling is not this service's job.
func isAdmin(r *http.Request) bool {
	role := r.Header.Get("X-User-Role")
	return role == "admin" || role == "super_admin"
}

func reportBuilder(store *db.Store) *dashboard.Builder {
	b := &dashboard.Builder{Store: store, PriceSource: dashboard.PriceEventCurrent}
	if v := os.Getenv("REPORT_PRICE_SOURCE"); v != "" {
		b.PriceSource = dashboard.PriceSource(v)
	}
	if v := os.Getenv("DEFAULT_EVENT_CAPACITY"); v != "" {
		if n, err := strconv.Atoi(v); err == nil {
			b.DefaultCapacity = n
		}
	}
	return b
}

func main() {
	_ = godotenv.Load()

	pg := db.Connect()
	db.Migrate(pg)
	db.Seed(pg)

	metrics.Register()

	corsMiddleware := cors.New(cors.Options{
		AllowedOrigins:   []string{"http://localhost:3000", "http://localhost:5173"},
		AllowedMethods:   []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowedHeaders:   []string{"*"},
		AllowCredentials: true,
	})

	es := elastic.Connect()
	worker := &workers.SyncWorker{DB: pg, ES: es}
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	go worker.Run(ctx)
	go worker.RetryDLQ(ctx)

	store := &db.Store{DB: pg}
	builder := reportBuilder(store)

	mux := http.NewServeMux()
	mux.Handle("/metrics", promhttp.Handler())

	mux.HandleFunc("/api/dashboard/admin", func(w http.ResponseWriter, r *http.Request) {
		if !isAdmin(r) {
			writeError(w, http.StatusForbidden, "admin access required")
			return
		}
		start := time.Now()
		report, err := builder.BuildReport(r.Context())
		metrics.ReportDuration.Observe(time.Since(start).Seconds())
		if err != nil {
			// no partial reports, one error for the whole build
			metrics.ReportFailures.Inc()
			log.Printf("❌ dashboard report failed: %v", err)
			writeError(w, http.StatusInternalServerError, err.Error())
			return
		}
		metrics.ReportBuilds.Inc()
		w.Header().Set("Content-Type", "application/json")
		json.NewEncoder(w).Encode(report)
	})

	mux.HandleFunc("/api/users", func(w http.ResponseWriter, r *http.Request) {
		if r.Method != http.MethodPost {
			writeError(w, http.StatusMethodNotAllowed, "method not allowed")
			return
		}
		var u models.User
		if err := json.NewDecoder(r.Body).Decode(&u); err != nil {
			writeError(w, http.StatusBadRequest, "invalid JSON body")
			return
		}
		if u.Email == "" || u.Name == "" {
			writeError(w, http.StatusBadRequest, "name and email are required")
			return
		}
		if err := services.CreateUser(pg, &u); err != nil {
			writeError(w, http.StatusInternalServerError, err.Error())
			return
		}
		json.NewEncoder(w).Encode(map[string]any{"status": "created", "id": u.ID})
	})

	mux.HandleFunc("/api/events", func(w http.ResponseWriter, r *http.Request) {
		switch r.Method {
		case http.MethodGet:
			events, err := store.ListEvents(r.Context())
			if err != nil {
				writeError(w, http.StatusInternalServerError, err.Error())
				return
			}
			json.NewEncoder(w).Encode(events)
		case http.MethodPost:
			if !isAdmin(r) {
				writeError(w, http.StatusForbidden, "admin access required")
				return
			}
			var ev models.Event
			if err := json.NewDecoder(r.Body).Decode(&ev); err != nil {
				writeError(w, http.StatusBadRequest, "invalid JSON body")
				return
			}
			if ev.Title == "" || ev.Date.IsZero() {
				writeError(w, http.StatusBadRequest, "title and date are required")
				return
			}
			if err := services.CreateEvent(pg, &ev); err != nil {
				writeError(w, http.StatusInternalServerError, err.Error())
				return
			}
			json.NewEncoder(w).Encode(map[string]any{"status": "created", "id": ev.ID})
		default:
			writeError(w, http.StatusMethodNotAllowed, "method not allowed")
		}
	})

	mux.HandleFunc("/api/registrations", func(w http.ResponseWriter, r *http.Request) {
		if r.Method != http.MethodPost {
			writeError(w, http.StatusMethodNotAllowed, "method not allowed")
			return
		}
		var req struct {
			EventID  uuid.UUID      `json:"eventId"`
			UserID   uuid.UUID      `json:"userId"`
			Name     string         `json:"name"`
			Contact  string         `json:"contact"`
			Academic datatypes.JSON `json:"academic"`
		}
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			writeError(w, http.StatusBadRequest, "invalid JSON body")
			return
		}
		reg, err := services.CreateRegistration(pg, req.EventID, req.UserID, req.Name, req.Contact, req.Academic)
		if err != nil {
			if errors.Is(err, services.ErrAlreadyRegistered) {
				writeError(w, http.StatusConflict, err.Error())
				return
			}
			writeError(w, http.StatusInternalServerError, err.Error())
			return
		}
		json.NewEncoder(w).Encode(map[string]any{"status": "registered", "id": reg.ID})
	})

	mux.HandleFunc("/api/search/events", func(w http.ResponseWriter, r *http.Request) {
		q := r.URL.Query().Get("q")
		if q == "" {
			writeError(w, http.StatusBadRequest, "q is required")
			return
		}
		body, _ := json.Marshal(map[string]any{
			"query": map[string]any{
				"multi_match": map[string]any{
					"query":  q,
					"fields": []string{"title^2", "description", "location"},
				},
			},
		})
		res, err := es.Search(
			es.Search.WithContext(r.Context()),
			es.Search.WithIndex(elastic.IdxEvents),
			es.Search.WithBody(strings.NewReader(string(body))),
		)
		if err != nil {
			writeError(w, http.StatusBadGateway, err.Error())
			return
		}
		defer res.Body.Close()
		w.Header().Set("Content-Type", "application/json")
		if _, err := io.Copy(w, res.Body); err != nil {
			log.Printf("search response copy failed: %v", err)
		}
	})

	mux.HandleFunc("/api/outbox", func(w http.ResponseWriter, r *http.Request) {
		var outboxes []models.Outbox
		pg.Order("id desc").Limit(100).Find(&outboxes)
		json.NewEncoder(w).Encode(outboxes)
	})
	mux.HandleFunc("/api/dlq", func(w http.ResponseWriter, r *http.Request) {
		var dlq []models.DLQ
		pg.Order("id desc").Limit(100).Find(&dlq)
		json.NewEncoder(w).Encode(dlq)
	})
	mux.HandleFunc("/api/retry/", func(rw http.ResponseWriter, r *http.Request) {
		id := r.URL.Path[len("/api/retry/"):]
		var d models.DLQ
		if err := pg.First(&d, "id = ?", id).Error; err != nil {
			writeError(rw, http.StatusNotFound, "not found")
			return
		}
		entityID, err := uuid.Parse(d.EntityID)
		if err != nil {
			writeError(rw, http.StatusUnprocessableEntity, "bad entity id in DLQ row")
			return
		}
		ob := models.Outbox{
			ID:         d.OutboxID,
			EntityType: d.EntityType,
			EntityID:   entityID,
			Op:         d.Op,
		}
		bi, _ := esutil.NewBulkIndexer(esutil.BulkIndexerConfig{
			Client: es, Index: "", FlushBytes: 5 << 20, NumWorkers: 2,
		})
		if err := worker.ApplyEvent(ctx, bi, ob); err != nil {
			workers.PutDLQ(pg, ob, err.Error())
			writeError(rw, http.StatusInternalServerError, "retry failed: "+err.Error())
			return
		}
		now := time.Now()
		pg.Model(&models.DLQ{}).Where("id = ?", id).Updates(map[string]any{"resolved": true, "retried_at": &now})
		json.NewEncoder(rw).Encode(map[string]string{"status": "retried"})
	})

	log.Println("🧭 Campus events API running on :8080")
	if err := http.ListenAndServe(":8080", corsMiddleware.Handler(mux)); err != nil {
		log.Fatalf("API listener failed: %v", err)
	}
}
