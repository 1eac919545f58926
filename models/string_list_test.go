package models

import "testing"

func TestStringListValue(t *testing.T) {
	v, err := StringList{"a", "b"}.Value()
	if err != nil {
		t.Fatalf("value failed: %v", err)
	}
	if v.(string) != `["a","b"]` {
		t.Errorf("unexpected serialized form: %v", v)
	}

	// nil serializes as an empty list, never as SQL NULL.
	v, err = StringList(nil).Value()
	if err != nil {
		t.Fatalf("value failed: %v", err)
	}
	if v.(string) != `[]` {
		t.Errorf("expected empty list for nil, got %v", v)
	}
}

func TestStringListScan(t *testing.T) {
	var l StringList
	if err := l.Scan(`["React","Node.js"]`); err != nil {
		t.Fatalf("scan failed: %v", err)
	}
	if len(l) != 2 || l[0] != "React" || l[1] != "Node.js" {
		t.Errorf("unexpected scan result: %v", l)
	}

	if err := l.Scan([]byte(`["x"]`)); err != nil {
		t.Fatalf("scan of []byte failed: %v", err)
	}
	if len(l) != 1 || l[0] != "x" {
		t.Errorf("unexpected scan result: %v", l)
	}

	if err := l.Scan(nil); err != nil {
		t.Fatalf("scan of nil failed: %v", err)
	}
	if l == nil || len(l) != 0 {
		t.Errorf("expected empty list for nil column, got %v", l)
	}

	if err := l.Scan(42); err == nil {
		t.Error("expected unsupported type to fail")
	}
}

func TestStringListRoundTrip(t *testing.T) {
	orig := StringList{"portrait", "professional", "lighting"}
	v, err := orig.Value()
	if err != nil {
		t.Fatalf("value failed: %v", err)
	}
	var back StringList
	if err := back.Scan(v); err != nil {
		t.Fatalf("scan failed: %v", err)
	}
	if len(back) != len(orig) {
		t.Fatalf("length mismatch: %v vs %v", back, orig)
	}
	for i := range orig {
		if back[i] != orig[i] {
			t.Errorf("element %d mismatch: %q vs %q", i, back[i], orig[i])
		}
	}
}
