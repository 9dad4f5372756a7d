package assets

import (
	"bytes"
	"image"
	"image/png"
	"testing"
)

func TestStorePutDeduplicates(t *testing.T) {
	st, err := Open(t.TempDir())
	if err != nil {
		t.Fatal(err)
	}

	data := []byte("pretend image bytes")
	k1, err := st.Put(data)
	if err != nil {
		t.Fatal(err)
	}
	k2, err := st.Put(data)
	if err != nil {
		t.Fatal(err)
	}

	if k1 != k2 {
		t.Errorf("same bytes produced different keys: %s vs %s", k1, k2)
	}
	if st.Len() != 1 {
		t.Errorf("store has %d entries, want 1", st.Len())
	}

	got, err := st.Get(k1)
	if err != nil {
		t.Fatal(err)
	}
	if !bytes.Equal(got, data) {
		t.Error("stored bytes do not round-trip")
	}
}

func TestStoreReopenFindsAssets(t *testing.T) {
	dir := t.TempDir()
	st, err := Open(dir)
	if err != nil {
		t.Fatal(err)
	}
	key, err := st.Put([]byte("some bytes"))
	if err != nil {
		t.Fatal(err)
	}

	reopened, err := Open(dir)
	if err != nil {
		t.Fatal(err)
	}
	if reopened.Len() != 1 {
		t.Fatalf("reopened store has %d entries, want 1", reopened.Len())
	}
	if _, ok := reopened.Path(key); !ok {
		t.Errorf("key %s lost across reopen", key)
	}
}

func TestStoreUnknownKey(t *testing.T) {
	st, err := Open(t.TempDir())
	if err != nil {
		t.Fatal(err)
	}
	if _, ok := st.Path("nope"); ok {
		t.Error("unknown key resolved")
	}
	if _, err := st.Get("nope"); err == nil {
		t.Error("unknown key read without error")
	}
	if _, err := st.Put(nil); err == nil {
		t.Error("empty data stored without error")
	}
}

func TestCacheResolve(t *testing.T) {
	st, err := Open(t.TempDir())
	if err != nil {
		t.Fatal(err)
	}

	var buf bytes.Buffer
	if err := png.Encode(&buf, image.NewNRGBA(image.Rect(0, 0, 12, 34))); err != nil {
		t.Fatal(err)
	}
	key, err := st.Put(buf.Bytes())
	if err != nil {
		t.Fatal(err)
	}

	cache := NewCache(st)
	img := cache.Resolve(key)
	if img == nil {
		t.Fatal("stored image did not resolve")
	}
	if img.Bounds().Dx() != 12 || img.Bounds().Dy() != 34 {
		t.Errorf("bounds %v, want 12x34", img.Bounds())
	}

	// Second resolve hits the cache and returns the same decode.
	if again := cache.Resolve(key); again != img {
		t.Error("second resolve re-decoded the image")
	}

	if cache.Resolve("unknown") != nil {
		t.Error("unknown key resolved to an image")
	}

	// Stored bytes that are not an image resolve to nil, repeatably.
	badKey, err := st.Put([]byte("not an image"))
	if err != nil {
		t.Fatal(err)
	}
	if cache.Resolve(badKey) != nil || cache.Resolve(badKey) != nil {
		t.Error("undecodable asset resolved to an image")
	}
}
