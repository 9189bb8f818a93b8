package api

import (
	"errors"
	"io"
	"log"
	"net/http"
	"strings"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"

	"github.com/chatlens/chatlens/internal/store"
	"github.com/chatlens/chatlens/pkg/detector"
	"github.com/chatlens/chatlens/pkg/emoji"
	"github.com/chatlens/chatlens/pkg/insights"
	"github.com/chatlens/chatlens/pkg/parser"
	"github.com/chatlens/chatlens/pkg/sentiment"
	"github.com/chatlens/chatlens/pkg/stats"
	"github.com/chatlens/chatlens/pkg/words"
)

func (s *Server) handleHealth(w http.ResponseWriter, _ *http.Request) {
	respondJSON(w, http.StatusOK, map[string]string{"status": "ok"})
}

func (s *Server) handleUpload(w http.ResponseWriter, r *http.Request) {
	r.Body = http.MaxBytesReader(w, r.Body, s.cfg.Server.MaxUploadBytes)

	file, header, err := r.FormFile("file")
	if err != nil {
		respondError(w, http.StatusBadRequest, "file form field is required")
		return
	}
	defer file.Close()

	data, err := io.ReadAll(file)
	if err != nil {
		respondError(w, http.StatusBadRequest, "reading upload failed")
		return
	}
	text := string(data)

	language := r.FormValue("language")
	switch language {
	case "":
		language = s.cfg.Parser.Language
	case "en", "it":
	default:
		respondError(w, http.StatusBadRequest, "invalid language: must be en or it")
		return
	}
	if language == "" {
		result := detector.New().DetectFromLines(strings.Split(text, "\n"))
		language = result.Language
	}

	messages, err := parser.Parse(text, parser.Options{PreambleLines: s.cfg.Parser.PreambleLines})
	if err != nil {
		if errors.Is(err, parser.ErrNoMessages) {
			respondError(w, http.StatusBadRequest, "no messages could be parsed from the file")
			return
		}
		respondError(w, http.StatusBadRequest, err.Error())
		return
	}

	sentiment.Attach(messages)

	sess := &store.Session{
		Key:       uuid.NewString(),
		Filename:  header.Filename,
		Language:  language,
		Messages:  messages,
		CreatedAt: time.Now().UTC(),
	}
	if err := s.store.Put(r.Context(), sess); err != nil {
		log.Printf("failed to save session: %v", err)
		respondError(w, http.StatusInternalServerError, "saving session failed")
		return
	}

	respondJSON(w, http.StatusOK, map[string]interface{}{
		"key":            sess.Key,
		"filename":       sess.Filename,
		"language":       sess.Language,
		"total_messages": len(messages),
		"authors":        parser.Authors(messages),
	})
}

func (s *Server) handleAuthors(w http.ResponseWriter, r *http.Request) {
	sess, ok := s.loadSession(w, r)
	if !ok {
		return
	}
	respondJSON(w, http.StatusOK, map[string]interface{}{
		"authors": parser.Authors(sess.Messages),
	})
}

func (s *Server) handleStats(w http.ResponseWriter, r *http.Request) {
	sess, ok := s.loadSession(w, r)
	if !ok {
		return
	}

	filter, err := filterFromQuery(r)
	if err != nil {
		respondError(w, http.StatusBadRequest, err.Error())
		return
	}

	bucketName := r.URL.Query().Get("time_group")
	if bucketName == "" {
		bucketName = "day"
	}
	bucket, err := stats.ParseBucket(bucketName)
	if err != nil {
		respondError(w, http.StatusBadRequest, err.Error())
		return
	}

	groupByAuthor, err := boolParam(r, "group_by_author")
	if err != nil {
		respondError(w, http.StatusBadRequest, err.Error())
		return
	}
	groupBySentiment, err := boolParam(r, "group_by_sentiment")
	if err != nil {
		respondError(w, http.StatusBadRequest, err.Error())
		return
	}

	messages := filter.Apply(sess.Messages)
	result := stats.Aggregate(messages, bucket, stats.Options{
		GroupByAuthor:    groupByAuthor,
		GroupBySentiment: groupBySentiment,
		Patterns:         s.patternsFor(sess.Language),
		LanguageTag:      sess.Language,
	})

	respondJSON(w, http.StatusOK, result)
}

func (s *Server) handleWordFrequency(w http.ResponseWriter, r *http.Request) {
	sess, ok := s.loadSession(w, r)
	if !ok {
		return
	}

	filter, err := filterFromQuery(r)
	if err != nil {
		respondError(w, http.StatusBadRequest, err.Error())
		return
	}

	limit, err := intParam(r, "limit", 0)
	if err != nil {
		respondError(w, http.StatusBadRequest, err.Error())
		return
	}
	minLength, err := intParam(r, "min_length", 3)
	if err != nil {
		respondError(w, http.StatusBadRequest, err.Error())
		return
	}

	messages := filter.Apply(sess.Messages)
	result, err := words.Frequency(messages, words.Options{Limit: limit, MinLength: minLength})
	if err != nil {
		respondError(w, http.StatusBadRequest, err.Error())
		return
	}

	respondJSON(w, http.StatusOK, result)
}

func (s *Server) handleInsights(w http.ResponseWriter, r *http.Request) {
	sess, ok := s.loadSession(w, r)
	if !ok {
		return
	}

	filter, err := filterFromQuery(r)
	if err != nil {
		respondError(w, http.StatusBadRequest, err.Error())
		return
	}

	messages := filter.Apply(sess.Messages)
	respondJSON(w, http.StatusOK, map[string]interface{}{
		"insights": insights.Generate(messages, sess.Language),
	})
}

func (s *Server) handleEmoji(w http.ResponseWriter, r *http.Request) {
	sess, ok := s.loadSession(w, r)
	if !ok {
		return
	}

	filter, err := filterFromQuery(r)
	if err != nil {
		respondError(w, http.StatusBadRequest, err.Error())
		return
	}

	messages := filter.Apply(sess.Messages)
	respondJSON(w, http.StatusOK, emoji.Analyze(messages))
}

func (s *Server) handleDeleteSession(w http.ResponseWriter, r *http.Request) {
	key := chi.URLParam(r, "key")
	if err := s.store.Delete(r.Context(), key); err != nil {
		log.Printf("failed to delete session: %v", err)
		respondError(w, http.StatusInternalServerError, "deleting session failed")
		return
	}
	respondJSON(w, http.StatusOK, map[string]string{"status": "deleted"})
}

// loadSession resolves the key query parameter to a stored session,
// responding with the appropriate error when it cannot.
func (s *Server) loadSession(w http.ResponseWriter, r *http.Request) (*store.Session, bool) {
	key := r.URL.Query().Get("key")
	if key == "" {
		respondError(w, http.StatusBadRequest, "key query parameter is required")
		return nil, false
	}

	sess, err := s.store.Get(r.Context(), key)
	if errors.Is(err, store.ErrNotFound) {
		respondError(w, http.StatusNotFound, "no data available for this key")
		return nil, false
	}
	if err != nil {
		log.Printf("failed to load session: %v", err)
		respondError(w, http.StatusInternalServerError, "session lookup failed")
		return nil, false
	}

	return sess, true
}
