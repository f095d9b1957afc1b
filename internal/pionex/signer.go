// Package pionex реализует подписанный доступ к REST API биржи Pionex.
package pionex

import (
	"crypto/hmac"
	"crypto/sha256"
	"encoding/hex"
	"sort"
	"strconv"
	"strings"
	"time"
)

// SignedRequest - результат подписи запроса.
// Timestamp, вошедший в подпись, обязан попасть и в итоговый URL,
// иначе биржа отвергнет подпись. Query уже содержит timestamp.
type SignedRequest struct {
	Method    string
	Path      string
	Query     string // канонический query string вместе с timestamp
	Timestamp int64  // unix миллисекунды
	Signature string // hex-encoded HMAC-SHA256
}

// Signer подписывает запросы секретным ключом Pionex.
// now подменяется в тестах для детерминированных подписей.
type Signer struct {
	secret []byte
	now    func() time.Time
}

// NewSigner создает Signer для заданного секрета
func NewSigner(secret string) *Signer {
	return &Signer{
		secret: []byte(secret),
		now:    time.Now,
	}
}

// Sign строит каноническую строку запроса и вычисляет подпись.
//
// Алгоритм Pionex:
//  1. Параметры сортируются по ключу, пустые значения отбрасываются.
//  2. К query добавляется timestamp=<текущие unix ms>.
//  3. Подписывается METHOD + path?query, для запросов с телом
//     к строке дописывается компактный JSON тела.
//
// Значения не URL-кодируются: биржа подписывает сырую строку.
func (s *Signer) Sign(method, path string, params map[string]string, body []byte) SignedRequest {
	timestamp := s.now().UnixMilli()

	// 1. Канонический query: отсортированные ключи, без пустых значений
	keys := make([]string, 0, len(params))
	for k, v := range params {
		if v == "" {
			continue
		}
		keys = append(keys, k)
	}
	sort.Strings(keys)

	var sb strings.Builder
	for _, k := range keys {
		sb.WriteString(k)
		sb.WriteByte('=')
		sb.WriteString(params[k])
		sb.WriteByte('&')
	}

	// 2. timestamp всегда последний параметр
	sb.WriteString("timestamp=")
	sb.WriteString(strconv.FormatInt(timestamp, 10))
	query := sb.String()

	// 3. Подпись METHOD + path?query [+ body]
	mac := hmac.New(sha256.New, s.secret)
	mac.Write([]byte(method))
	mac.Write([]byte(path))
	mac.Write([]byte{'?'})
	mac.Write([]byte(query))
	if len(body) > 0 {
		mac.Write(body)
	}

	return SignedRequest{
		Method:    method,
		Path:      path,
		Query:     query,
		Timestamp: timestamp,
		Signature: hex.EncodeToString(mac.Sum(nil)),
	}
}
