package upstream

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/rs/zerolog"

	"github.com/biblioteca-cpe/console-gateway/internal/core/domain"
	"github.com/biblioteca-cpe/console-gateway/internal/core/ports"
)

func testClient(t *testing.T, handler http.HandlerFunc) *Client {
	t.Helper()
	srv := httptest.NewServer(handler)
	t.Cleanup(srv.Close)
	return NewClient(srv.URL, time.Second, zerolog.Nop())
}

func TestClient_ForwardsBearerToken(t *testing.T) {
	var got string
	client := testClient(t, func(w http.ResponseWriter, r *http.Request) {
		got = r.Header.Get("Authorization")
		_, _ = w.Write([]byte(`[]`))
	})

	ctx := ports.WithUpstreamToken(context.Background(), "upstream-jwt")
	if _, err := client.ListUsers(ctx); err != nil {
		t.Fatalf("list: %v", err)
	}
	if got != "Bearer upstream-jwt" {
		t.Fatalf("expected bearer header, got %q", got)
	}
}

func TestClient_NoTokenNoHeader(t *testing.T) {
	var got string
	client := testClient(t, func(w http.ResponseWriter, r *http.Request) {
		got = r.Header.Get("Authorization")
		_, _ = w.Write([]byte(`[]`))
	})

	if _, err := client.ListUsers(context.Background()); err != nil {
		t.Fatalf("list: %v", err)
	}
	if got != "" {
		t.Fatalf("expected no auth header, got %q", got)
	}
}

func TestClient_ListDecodesArray(t *testing.T) {
	client := testClient(t, func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/usuarios" {
			t.Errorf("unexpected path %s", r.URL.Path)
		}
		_, _ = w.Write([]byte(`[{"id":10016,"nome":"Bruno Oliveira","cpf":"98765432111"}]`))
	})

	users, err := client.ListUsers(context.Background())
	if err != nil {
		t.Fatalf("list: %v", err)
	}
	if len(users) != 1 || users[0].Nome != "Bruno Oliveira" {
		t.Fatalf("unexpected result %+v", users)
	}
}

func TestClient_NonArrayBodyIsMalformed(t *testing.T) {
	client := testClient(t, func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte(`{"message":"pagina nao encontrada"}`))
	})

	_, err := client.ListBooks(context.Background())
	if !errors.Is(err, domain.ErrMalformedResponse) {
		t.Fatalf("expected ErrMalformedResponse, got %v", err)
	}
}

func TestClient_NonOKStatusPassesThrough(t *testing.T) {
	client := testClient(t, func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusConflict)
		_, _ = w.Write([]byte(`{"message":"exemplar ja emprestado"}`))
	})

	err := client.CreateLoan(context.Background(), ports.LoanInput{UsuarioID: 10016, ExemplarCodigo: "EX-1"})
	var ue *domain.UpstreamError
	if !errors.As(err, &ue) {
		t.Fatalf("expected *domain.UpstreamError, got %v", err)
	}
	if ue.Status != http.StatusConflict || ue.Message != "exemplar ja emprestado" {
		t.Fatalf("unexpected error %+v", ue)
	}
}

func TestClient_TransportFailureIsUnavailable(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {}))
	srv.Close() // nothing listening anymore

	client := NewClient(srv.URL, time.Second, zerolog.Nop())
	_, err := client.ListLoans(context.Background())
	if !errors.Is(err, domain.ErrUpstreamUnavailable) {
		t.Fatalf("expected ErrUpstreamUnavailable, got %v", err)
	}
}

func TestClient_GetBookKeepsRecordID(t *testing.T) {
	client := testClient(t, func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/livros/isbn/9788535902778" {
			t.Errorf("unexpected path %s", r.URL.Path)
		}
		_, _ = w.Write([]byte(`{"id":42,"isbn":"9788535902778","titulo":"Vidas Secas","exemplares":[{"codigo":"EX-1"},{"codigo":"EX-2"}]}`))
	})

	book, err := client.GetBook(context.Background(), "9788535902778")
	if err != nil {
		t.Fatalf("get: %v", err)
	}
	// The edit flow updates by record id, so the detail payload must keep it.
	if book.ID != 42 {
		t.Fatalf("expected id 42, got %d", book.ID)
	}
	if len(book.Exemplares) != 2 || book.Exemplares[0].Codigo != "EX-1" {
		t.Fatalf("unexpected exemplares %+v", book.Exemplares)
	}
}

func TestClient_SearchSendsQueryParam(t *testing.T) {
	var got string
	client := testClient(t, func(w http.ResponseWriter, r *http.Request) {
		got = r.URL.Query().Get("q")
		_, _ = w.Write([]byte(`[]`))
	})

	if _, err := client.SearchUsers(context.Background(), "helena"); err != nil {
		t.Fatalf("search: %v", err)
	}
	if got != "helena" {
		t.Fatalf("expected q=helena, got %q", got)
	}
}

func TestClient_LoanRoutesCarryCompositeKey(t *testing.T) {
	var path, method string
	client := testClient(t, func(w http.ResponseWriter, r *http.Request) {
		path, method = r.URL.Path, r.Method
	})

	key := ports.LoanKey{UsuarioID: 10016, ExemplarCodigo: "EX-1", DataInicio: "2026-03-10"}
	if err := client.RenewLoan(context.Background(), key); err != nil {
		t.Fatalf("renew: %v", err)
	}
	if path != "/emprestimos/10016/EX-1/2026-03-10/renovar" || method != http.MethodPatch {
		t.Fatalf("unexpected request %s %s", method, path)
	}

	if err := client.ReturnLoan(context.Background(), key); err != nil {
		t.Fatalf("return: %v", err)
	}
	if path != "/emprestimos/10016/EX-1/2026-03-10/devolver" || method != http.MethodPatch {
		t.Fatalf("unexpected request %s %s", method, path)
	}

	if err := client.DeleteLoan(context.Background(), key); err != nil {
		t.Fatalf("delete: %v", err)
	}
	if path != "/emprestimos/10016/EX-1/2026-03-10" || method != http.MethodDelete {
		t.Fatalf("unexpected request %s %s", method, path)
	}
}

func TestClient_PenaltyFulfillRoute(t *testing.T) {
	var path, method string
	client := testClient(t, func(w http.ResponseWriter, r *http.Request) {
		path, method = r.URL.Path, r.Method
	})

	key := ports.PenaltyKey{UsuarioID: 10016, ExemplarCodigo: "EX-1", EmprestimoDataInicio: "2026-03-10", DataAplicacao: "2026-03-21"}
	if err := client.FulfillPenalty(context.Background(), key); err != nil {
		t.Fatalf("fulfill: %v", err)
	}
	if path != "/penalidade/10016/EX-1/2026-03-10/2026-03-21/cumprida" || method != http.MethodPatch {
		t.Fatalf("unexpected request %s %s", method, path)
	}
}

func TestClient_DeleteUserMapsNotFound(t *testing.T) {
	client := testClient(t, func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusNotFound)
	})

	err := client.DeleteUser(context.Background(), 99999)
	if !errors.Is(err, domain.ErrUserNotFound) {
		t.Fatalf("expected ErrUserNotFound, got %v", err)
	}
}

func TestClient_LoginMapsUnauthorized(t *testing.T) {
	client := testClient(t, func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusUnauthorized)
		_, _ = w.Write([]byte(`{"message":"credenciais invalidas"}`))
	})

	_, _, err := client.Login(context.Background(), "maria@cpe.org", "errada")
	if !errors.Is(err, domain.ErrInvalidCredentials) {
		t.Fatalf("expected ErrInvalidCredentials, got %v", err)
	}
}

func TestClient_LoginReturnsTokenAndProfile(t *testing.T) {
	client := testClient(t, func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/login" || r.Method != http.MethodPost {
			t.Errorf("unexpected request %s %s", r.Method, r.URL.Path)
		}
		_, _ = w.Write([]byte(`{"token":"upstream-jwt","nome":"Maria","email":"maria@cpe.org"}`))
	})

	token, profile, err := client.Login(context.Background(), "maria@cpe.org", "senha123")
	if err != nil {
		t.Fatalf("login: %v", err)
	}
	if token != "upstream-jwt" || profile.Nome != "Maria" {
		t.Fatalf("unexpected login result %q %+v", token, profile)
	}
}
