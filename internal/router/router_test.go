package router

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"
)

func newTestServer(t *testing.T) *httptest.Server {
	t.Helper()
	app := NewApp(Options{})
	srv := httptest.NewServer(app.Handler)
	t.Cleanup(func() {
		srv.Close()
		app.Chat.Close()
	})
	return srv
}

// doReq hace una solicitud contra el servidor de prueba y devuelve el status
// y el cuerpo. body puede ser nil o cualquier valor serializable a JSON.
func doReq(t *testing.T, baseURL, method, path string, body any) (int, []byte) {
	t.Helper()

	var reader io.Reader
	if body != nil {
		data, err := json.Marshal(body)
		if err != nil {
			t.Fatalf("marshal body: %v", err)
		}
		reader = bytes.NewReader(data)
	}

	req, err := http.NewRequest(method, baseURL+path, reader)
	if err != nil {
		t.Fatalf("new request: %v", err)
	}
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}

	resp, err := http.DefaultClient.Do(req)
	if err != nil {
		t.Fatalf("%s %s: %v", method, path, err)
	}
	defer resp.Body.Close()

	data, err := io.ReadAll(resp.Body)
	if err != nil {
		t.Fatalf("read body: %v", err)
	}
	return resp.StatusCode, data
}

func decode[T any](t *testing.T, data []byte) T {
	t.Helper()
	var out T
	if err := json.Unmarshal(data, &out); err != nil {
		t.Fatalf("unmarshal %T: %v\nbody: %s", out, err, data)
	}
	return out
}

func TestHealth(t *testing.T) {
	srv := newTestServer(t)
	status, body := doReq(t, srv.URL, http.MethodGet, "/health", nil)
	if status != http.StatusOK || string(body) != "ok" {
		t.Fatalf("expected 200 ok, got %d %q", status, body)
	}
}

func TestPetsEndpoints(t *testing.T) {
	srv := newTestServer(t)

	status, body := doReq(t, srv.URL, http.MethodGet, "/pets", nil)
	if status != http.StatusOK {
		t.Fatalf("list pets: %d %s", status, body)
	}
	pets := decode[[]map[string]any](t, body)
	if len(pets) != 3 {
		t.Fatalf("expected the 3 seeded pets, got %d", len(pets))
	}
	if pets[0]["name"] != "Bella" {
		t.Fatalf("expected Bella first, got %v", pets[0]["name"])
	}

	status, body = doReq(t, srv.URL, http.MethodPost, "/pets", map[string]any{
		"name":  "Mia",
		"image": "/mia.png",
		"info":  map[string]any{"species": "Gato", "weight": "4kg", "age": "2 anos", "breed": "Siamês"},
	})
	if status != http.StatusCreated {
		t.Fatalf("create pet: %d %s", status, body)
	}
	created := decode[map[string]any](t, body)
	id := int64(created["id"].(float64))
	if id <= 3 {
		t.Fatalf("expected a fresh id for the new pet, got %d", id)
	}

	status, _ = doReq(t, srv.URL, http.MethodGet, fmt.Sprintf("/pets/%d", id), nil)
	if status != http.StatusOK {
		t.Fatalf("get pet: %d", status)
	}

	status, _ = doReq(t, srv.URL, http.MethodGet, "/pets/99", nil)
	if status != http.StatusNotFound {
		t.Fatalf("expected 404 for unknown pet, got %d", status)
	}

	status, _ = doReq(t, srv.URL, http.MethodPost, "/pets", map[string]any{"name": "Sem espécie"})
	if status != http.StatusBadRequest {
		t.Fatalf("expected 400 for missing species, got %d", status)
	}
}

func TestEventsEndpoints(t *testing.T) {
	srv := newTestServer(t)

	status, body := doReq(t, srv.URL, http.MethodPost, "/pets/1/events", map[string]any{
		"title":    "Banho e tosa",
		"type":     "consulta",
		"date":     time.Now().AddDate(0, 0, 3).Format("2006-01-02"),
		"time":     "10:00",
		"reminder": true,
	})
	if status != http.StatusCreated {
		t.Fatalf("create event: %d %s", status, body)
	}
	created := decode[map[string]any](t, body)
	eventID := created["id"].(string)
	if eventID == "" {
		t.Fatalf("created event has no id: %s", body)
	}

	status, body = doReq(t, srv.URL, http.MethodGet, "/pets/1/events", nil)
	if status != http.StatusOK {
		t.Fatalf("list pet events: %d %s", status, body)
	}
	list := decode[[]map[string]any](t, body)
	var found bool
	for _, e := range list {
		if e["id"] == eventID {
			found = true
		}
	}
	if !found {
		t.Fatalf("created event missing from the upcoming list: %s", body)
	}

	status, body = doReq(t, srv.URL, http.MethodPost, "/events/"+eventID+"/toggle", nil)
	if status != http.StatusOK {
		t.Fatalf("toggle: %d %s", status, body)
	}
	toggled := decode[map[string]any](t, body)
	if toggled["completed"] != true {
		t.Fatalf("expected completed after toggle: %s", body)
	}

	status, _ = doReq(t, srv.URL, http.MethodDelete, "/events/"+eventID, nil)
	if status != http.StatusNoContent {
		t.Fatalf("delete event: %d", status)
	}
	status, _ = doReq(t, srv.URL, http.MethodPost, "/events/"+eventID+"/toggle", nil)
	if status != http.StatusNotFound {
		t.Fatalf("expected 404 after delete, got %d", status)
	}

	status, body = doReq(t, srv.URL, http.MethodGet, "/events/grouped", nil)
	if status != http.StatusOK {
		t.Fatalf("grouped: %d %s", status, body)
	}
	groups := decode[[]map[string]any](t, body)
	if len(groups) == 0 {
		t.Fatalf("expected at least one month group")
	}

	// El evento 4 de la semilla vence hoy
	status, body = doReq(t, srv.URL, http.MethodGet, "/reminders/due", nil)
	if status != http.StatusOK {
		t.Fatalf("reminders due: %d %s", status, body)
	}
	due := decode[[]map[string]any](t, body)
	if len(due) != 1 || due[0]["id"] != "4" {
		t.Fatalf("expected seeded event 4 due today, got %s", body)
	}
}

func TestNotificationsEndpoints(t *testing.T) {
	srv := newTestServer(t)

	status, body := doReq(t, srv.URL, http.MethodGet, "/notifications", nil)
	if status != http.StatusOK {
		t.Fatalf("list notifications: %d %s", status, body)
	}
	list := decode[[]map[string]any](t, body)
	var hasToday bool
	for _, n := range list {
		if n["id"] == "today-4" {
			hasToday = true
			if n["read"] == true {
				t.Fatalf("today-4 should start unread")
			}
		}
	}
	if !hasToday {
		t.Fatalf("expected a today-4 notification for the seeded event: %s", body)
	}

	// Marcar como leída sobrevive a la regeneración
	status, _ = doReq(t, srv.URL, http.MethodPost, "/notifications/today-4/read", nil)
	if status != http.StatusNoContent {
		t.Fatalf("mark read: %d", status)
	}
	_, body = doReq(t, srv.URL, http.MethodGet, "/notifications", nil)
	list = decode[[]map[string]any](t, body)
	for _, n := range list {
		if n["id"] == "today-4" && n["read"] != true {
			t.Fatalf("read flag lost after regeneration: %v", n)
		}
	}

	// Notificación manual
	status, body = doReq(t, srv.URL, http.MethodPost, "/notifications", map[string]any{
		"petId":   1,
		"title":   "Pesar a Bella",
		"message": "Lembrar de pesar a Bella na próxima visita",
	})
	if status != http.StatusCreated {
		t.Fatalf("create custom: %d %s", status, body)
	}
	custom := decode[map[string]any](t, body)
	customID := custom["id"].(string)
	if custom["type"] != "general" || custom["priority"] != "medium" {
		t.Fatalf("expected general/medium defaults, got %s", body)
	}

	_, body = doReq(t, srv.URL, http.MethodGet, "/notifications?pet=1", nil)
	list = decode[[]map[string]any](t, body)
	var hasCustom bool
	for _, n := range list {
		if n["id"] == customID {
			hasCustom = true
		}
		if int64(n["petId"].(float64)) != 1 {
			t.Fatalf("pet filter leaked %v", n)
		}
	}
	if !hasCustom {
		t.Fatalf("custom notification missing from pet 1 list")
	}

	status, body = doReq(t, srv.URL, http.MethodGet, "/notifications/unread-count", nil)
	if status != http.StatusOK {
		t.Fatalf("unread count: %d %s", status, body)
	}
	count := decode[map[string]int](t, body)
	if count["count"] == 0 {
		t.Fatalf("expected unread notifications, got %s", body)
	}

	status, _ = doReq(t, srv.URL, http.MethodPost, "/notifications/read-all", nil)
	if status != http.StatusNoContent {
		t.Fatalf("read all: %d", status)
	}
	_, body = doReq(t, srv.URL, http.MethodGet, "/notifications/unread-count", nil)
	count = decode[map[string]int](t, body)
	if count["count"] != 0 {
		t.Fatalf("expected 0 unread after read-all, got %d", count["count"])
	}

	status, _ = doReq(t, srv.URL, http.MethodDelete, "/notifications/"+customID, nil)
	if status != http.StatusNoContent {
		t.Fatalf("delete custom: %d", status)
	}
	status, _ = doReq(t, srv.URL, http.MethodPost, "/notifications/nope/read", nil)
	if status != http.StatusNotFound {
		t.Fatalf("expected 404 for unknown notification, got %d", status)
	}
}

func TestActivityEndpoints(t *testing.T) {
	srv := newTestServer(t)

	status, body := doReq(t, srv.URL, http.MethodGet, "/pets/2/activity/summary", nil)
	if status != http.StatusOK {
		t.Fatalf("summary: %d %s", status, body)
	}
	summary := decode[map[string]any](t, body)
	if summary["activePercentage"].(float64) != 7 || summary["activityLevel"] != "BAIXO" {
		t.Fatalf("unexpected summary for Dom: %s", body)
	}

	status, body = doReq(t, srv.URL, http.MethodGet, "/pets/2/activity/samples?range=week", nil)
	if status != http.StatusOK {
		t.Fatalf("samples: %d %s", status, body)
	}
	samples := decode[[]map[string]any](t, body)
	if len(samples) != 7 {
		t.Fatalf("expected 7 weekly samples, got %d", len(samples))
	}

	status, body = doReq(t, srv.URL, http.MethodGet, "/pets/2/activity/alerts", nil)
	if status != http.StatusOK {
		t.Fatalf("alerts: %d %s", status, body)
	}
	alerts := decode[map[string]any](t, body)
	if alerts["hasAlerts"] != true {
		t.Fatalf("expected the low-activity alert for Dom: %s", body)
	}

	status, body = doReq(t, srv.URL, http.MethodGet, "/pets/3/health/abnormalities", nil)
	if status != http.StatusOK {
		t.Fatalf("abnormalities: %d %s", status, body)
	}
	abn := decode[map[string]any](t, body)
	if abn["hasAbnormality"] != true {
		t.Fatalf("expected Thor's febrile episode: %s", body)
	}

	status, _ = doReq(t, srv.URL, http.MethodGet, "/pets/99/activity/summary", nil)
	if status != http.StatusNotFound {
		t.Fatalf("expected 404 for unknown pet, got %d", status)
	}
}

func TestDocumentsEndpoints(t *testing.T) {
	srv := newTestServer(t)

	status, body := doReq(t, srv.URL, http.MethodGet, "/documents", nil)
	if status != http.StatusOK {
		t.Fatalf("list documents: %d %s", status, body)
	}
	docs := decode[[]map[string]any](t, body)
	if len(docs) != 4 {
		t.Fatalf("expected the 4 seeded documents, got %d", len(docs))
	}

	status, body = doReq(t, srv.URL, http.MethodPost, "/pets/1/documents", map[string]any{
		"name":     "Atestado de saúde",
		"fileType": "pdf",
		"fileURL":  "/documents/atestado.pdf",
		"fileSize": 245760,
		"category": "outros",
	})
	if status != http.StatusCreated {
		t.Fatalf("add document: %d %s", status, body)
	}
	created := decode[map[string]any](t, body)
	docID := created["id"].(string)
	if created["fileSizeLabel"] != "240.0 KB" {
		t.Fatalf("expected formatted size label, got %v", created["fileSizeLabel"])
	}

	status, body = doReq(t, srv.URL, http.MethodPost, "/documents/"+docID+"/favorite", nil)
	if status != http.StatusOK {
		t.Fatalf("favorite: %d %s", status, body)
	}
	fav := decode[map[string]any](t, body)
	if fav["isFavorite"] != true {
		t.Fatalf("expected favorite after toggle: %s", body)
	}

	status, body = doReq(t, srv.URL, http.MethodGet, "/pets/1/documents?category=vacinas", nil)
	if status != http.StatusOK {
		t.Fatalf("filter by category: %d %s", status, body)
	}
	filtered := decode[[]map[string]any](t, body)
	if len(filtered) != 1 || filtered[0]["id"] != "doc-2" {
		t.Fatalf("expected only doc-2 for vacinas, got %s", body)
	}

	status, _ = doReq(t, srv.URL, http.MethodDelete, "/documents/"+docID, nil)
	if status != http.StatusNoContent {
		t.Fatalf("delete document: %d", status)
	}
	status, _ = doReq(t, srv.URL, http.MethodGet, "/documents/"+docID, nil)
	if status != http.StatusNotFound {
		t.Fatalf("expected 404 after delete, got %d", status)
	}
}

func TestChatEndpoints(t *testing.T) {
	srv := newTestServer(t)

	status, body := doReq(t, srv.URL, http.MethodPost, "/chat/sessions", nil)
	if status != http.StatusCreated {
		t.Fatalf("create session: %d %s", status, body)
	}
	sess := decode[map[string]any](t, body)
	sessionID := sess["id"].(string)

	status, body = doReq(t, srv.URL, http.MethodPost, "/chat/sessions/"+sessionID+"/messages", map[string]any{
		"text": "oi, tudo bem?",
	})
	if status != http.StatusOK {
		t.Fatalf("send message: %d %s", status, body)
	}
	sess = decode[map[string]any](t, body)
	msgs := sess["messages"].([]any)
	if len(msgs) != 3 {
		t.Fatalf("expected welcome + user + bot, got %d messages", len(msgs))
	}
	last := msgs[len(msgs)-1].(map[string]any)
	if last["sender"] != "bot" || last["text"] != "Olá! Como posso te ajudar hoje?" {
		t.Fatalf("expected the greeting reply, got %v", last)
	}

	status, body = doReq(t, srv.URL, http.MethodPost, "/chat/sessions/"+sessionID+"/agent", nil)
	if status != http.StatusOK {
		t.Fatalf("request agent: %d %s", status, body)
	}
	sess = decode[map[string]any](t, body)
	if sess["handedOff"] != true {
		t.Fatalf("expected handed off session: %s", body)
	}

	status, _ = doReq(t, srv.URL, http.MethodDelete, "/chat/sessions/"+sessionID, nil)
	if status != http.StatusNoContent {
		t.Fatalf("close session: %d", status)
	}
	status, _ = doReq(t, srv.URL, http.MethodGet, "/chat/sessions/"+sessionID, nil)
	if status != http.StatusNotFound {
		t.Fatalf("expected 404 after close, got %d", status)
	}
}

func TestTelemedicineEndpoints(t *testing.T) {
	srv := newTestServer(t)

	status, body := doReq(t, srv.URL, http.MethodGet, "/telemedicine/specialties", nil)
	if status != http.StatusOK {
		t.Fatalf("specialties: %d %s", status, body)
	}
	specialties := decode[[]map[string]any](t, body)
	if len(specialties) != 8 {
		t.Fatalf("expected 8 specialties, got %d", len(specialties))
	}

	status, body = doReq(t, srv.URL, http.MethodGet, "/telemedicine/waiting-messages", nil)
	if status != http.StatusOK {
		t.Fatalf("waiting messages: %d %s", status, body)
	}
	messages := decode[[]string](t, body)
	if len(messages) != 9 {
		t.Fatalf("expected 9 waiting messages, got %d", len(messages))
	}
}
