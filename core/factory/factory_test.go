package factory

import (
	"strings"
	"testing"
)

// stubSink mimics the metrics sinks this registry exists for.
type stubSink struct {
	URL    string
	Bucket string
}

type stubSinkConf struct {
	URL    string `json:"url"`
	Bucket string `json:"bucket"`
}

func newStubRegistry(t *testing.T) *Registry[*stubSink] {
	t.Helper()
	reg := NewRegistry[*stubSink]()
	err := reg.Register("stub", func(conf map[string]any) (*stubSink, error) {
		var c stubSinkConf
		if err := Decode(conf, &c); err != nil {
			return nil, err
		}
		return &stubSink{URL: c.URL, Bucket: c.Bucket}, nil
	})
	if err != nil {
		t.Fatalf("register: %v", err)
	}
	return reg
}

func TestRegistry_CreateDecodesConf(t *testing.T) {
	reg := newStubRegistry(t)
	sink, err := reg.Create(ModuleConfig{
		Type: "stub",
		Conf: map[string]any{"url": "http://localhost:8086", "bucket": "runs"},
	})
	if err != nil {
		t.Fatalf("create: %v", err)
	}
	if sink.URL != "http://localhost:8086" || sink.Bucket != "runs" {
		t.Fatalf("unexpected sink: %+v", sink)
	}
}

func TestRegistry_DuplicateRegistration(t *testing.T) {
	reg := newStubRegistry(t)
	err := reg.Register("stub", func(map[string]any) (*stubSink, error) { return &stubSink{}, nil })
	if err == nil {
		t.Fatal("expected duplicate registration error")
	}
}

func TestRegistry_NilFactory(t *testing.T) {
	reg := NewRegistry[*stubSink]()
	if err := reg.Register("stub", nil); err == nil {
		t.Fatal("expected error for nil factory")
	}
}

func TestRegistry_UnknownTypeListsRegistered(t *testing.T) {
	reg := newStubRegistry(t)
	_, err := reg.Create(ModuleConfig{Type: "prometeus"})
	if err == nil {
		t.Fatal("expected unknown type error")
	}
	if !strings.Contains(err.Error(), "stub") {
		t.Fatalf("expected registered names in error, got %v", err)
	}
}

func TestDecode_TypeMismatch(t *testing.T) {
	var c stubSinkConf
	if err := Decode(map[string]any{"url": 42}, &c); err == nil {
		t.Fatal("expected decode error for non-string url")
	}
}
