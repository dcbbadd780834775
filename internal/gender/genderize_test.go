package gender

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"
)

func TestGenderizeResolveGender(t *testing.T) {
	tests := []struct {
		name     string
		response string
		status   int
		want     Gender
		wantErr  bool
	}{
		{"male answer", `{"name":"john","gender":"male","probability":0.99,"count":12345}`, http.StatusOK, Male, false},
		{"female answer", `{"name":"mary","gender":"female","probability":0.98,"count":9876}`, http.StatusOK, Female, false},
		{"null gender", `{"name":"xxyyzz","gender":null,"probability":0,"count":0}`, http.StatusOK, Unknown, false},
		{"rate limited", `{"error":"request limit reached"}`, http.StatusTooManyRequests, Unknown, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				if r.URL.Query().Get("name") == "" {
					t.Error("request missing name parameter")
				}
				w.WriteHeader(tt.status)
				w.Write([]byte(tt.response))
			}))
			defer srv.Close()

			c := NewGenderizeClient(WithGenderizeBaseURL(srv.URL))
			got, err := c.ResolveGender(context.Background(), "any")
			if (err != nil) != tt.wantErr {
				t.Fatalf("ResolveGender() error = %v, wantErr %v", err, tt.wantErr)
			}
			if got != tt.want {
				t.Errorf("ResolveGender() = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestGenderizeImplementsOracle(t *testing.T) {
	var _ Oracle = NewGenderizeClient()
}
