package localstore

import (
	"bufio"
	"context"
	"fmt"
	"io"
	"net"
	"strconv"
	"strings"
	"sync"
	"testing"

	"airlace/models"

	"github.com/go-redis/redis/v8"
)

// respServer is a minimal in-process Redis answering GET/SET/DEL over
// net.Pipe, enough to exercise RedisStore without a live server.
type respServer struct {
	mu   sync.Mutex
	data map[string]string
}

func newRespClient() (*redis.Client, *respServer) {
	srv := &respServer{data: map[string]string{}}
	client := redis.NewClient(&redis.Options{
		Dialer: func(ctx context.Context, network, addr string) (net.Conn, error) {
			local, remote := net.Pipe()
			go srv.serve(remote)
			return local, nil
		},
	})
	return client, srv
}

func (s *respServer) serve(conn net.Conn) {
	defer conn.Close()
	r := bufio.NewReader(conn)
	for {
		args, err := readCommand(r)
		if err != nil {
			return
		}
		s.mu.Lock()
		switch strings.ToUpper(args[0]) {
		case "SET":
			s.data[args[1]] = args[2]
			io.WriteString(conn, "+OK\r\n")
		case "GET":
			if v, ok := s.data[args[1]]; ok {
				fmt.Fprintf(conn, "$%d\r\n%s\r\n", len(v), v)
			} else {
				io.WriteString(conn, "$-1\r\n")
			}
		case "DEL":
			delete(s.data, args[1])
			io.WriteString(conn, ":1\r\n")
		default:
			io.WriteString(conn, "+OK\r\n")
		}
		s.mu.Unlock()
	}
}

func readCommand(r *bufio.Reader) ([]string, error) {
	header, err := r.ReadString('\n')
	if err != nil {
		return nil, err
	}
	if !strings.HasPrefix(header, "*") {
		return nil, fmt.Errorf("unexpected command header %q", header)
	}
	n, err := strconv.Atoi(strings.TrimSpace(header[1:]))
	if err != nil {
		return nil, err
	}
	args := make([]string, 0, n)
	for i := 0; i < n; i++ {
		sizeLine, err := r.ReadString('\n')
		if err != nil {
			return nil, err
		}
		size, err := strconv.Atoi(strings.TrimSpace(sizeLine[1:]))
		if err != nil {
			return nil, err
		}
		buf := make([]byte, size+2)
		if _, err := io.ReadFull(r, buf); err != nil {
			return nil, err
		}
		args = append(args, string(buf[:size]))
	}
	return args, nil
}

func (s *respServer) has(key string) bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	_, ok := s.data[key]
	return ok
}

func TestRedisStoreSplitsDurableAndCacheKeys(t *testing.T) {
	durableClient, durableSrv := newRespClient()
	cacheClient, cacheSrv := newRespClient()
	store := NewRedisStore(durableClient, cacheClient)

	state := models.CartState{Items: []models.CartItem{{
		ID:       "1",
		CheckIn:  "2026-09-01",
		CheckOut: "2026-09-04",
		Guests:   2,
		Price:    10770,
	}}}
	if err := store.Save(state); err != nil {
		t.Fatalf("Save: %v", err)
	}
	if err := store.SaveLastOrder("AIR1234567"); err != nil {
		t.Fatalf("SaveLastOrder: %v", err)
	}
	if err := store.SaveRecent([]models.RecentSearch{{Term: "goa"}}); err != nil {
		t.Fatalf("SaveRecent: %v", err)
	}

	if !durableSrv.has("cart") || !durableSrv.has("last_order") {
		t.Error("cart and last order should live on the durable client")
	}
	if !cacheSrv.has("recent_searches") {
		t.Error("recent searches should live on the cache client")
	}
	if durableSrv.has("recent_searches") {
		t.Error("recent searches written to the durable client")
	}
	if cacheSrv.has("cart") {
		t.Error("cart written to the cache client")
	}
}

func TestRedisStoreRoundtrip(t *testing.T) {
	durableClient, _ := newRespClient()
	cacheClient, _ := newRespClient()
	store := NewRedisStore(durableClient, cacheClient)

	loaded, err := store.Load()
	if err != nil {
		t.Fatalf("Load on empty store: %v", err)
	}
	if loaded != nil {
		t.Fatalf("expected nil state before first save, got %+v", loaded)
	}

	state := models.CartState{Items: []models.CartItem{{ID: "3", CheckIn: "2026-10-10", CheckOut: "2026-10-12", Guests: 4, Price: 9980}}}
	if err := store.Save(state); err != nil {
		t.Fatalf("Save: %v", err)
	}
	loaded, err = store.Load()
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if loaded == nil || len(loaded.Items) != 1 || loaded.Items[0].ID != "3" {
		t.Fatalf("unexpected state after roundtrip: %+v", loaded)
	}

	if err := store.Clear(); err != nil {
		t.Fatalf("Clear: %v", err)
	}
	loaded, err = store.Load()
	if err != nil {
		t.Fatalf("Load after Clear: %v", err)
	}
	if loaded != nil {
		t.Fatalf("expected nil state after Clear, got %+v", loaded)
	}

	if err := store.SaveRecent([]models.RecentSearch{{Term: "kerala"}, {Term: "goa"}}); err != nil {
		t.Fatalf("SaveRecent: %v", err)
	}
	searches, err := store.LoadRecent()
	if err != nil {
		t.Fatalf("LoadRecent: %v", err)
	}
	if len(searches) != 2 || searches[0].Term != "kerala" {
		t.Fatalf("unexpected recent searches: %+v", searches)
	}
}
