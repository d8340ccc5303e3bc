package auth

import "testing"

func TestHashVerify_RoundTrip(t *testing.T) {
	hash, err := HashPassword("s3cret")
	if err != nil {
		t.Fatalf("hash failed: %v", err)
	}
	if hash == "s3cret" {
		t.Fatalf("plaintext must not survive hashing")
	}
	if !VerifyPassword("s3cret", hash) {
		t.Fatalf("expected password to verify against its own hash")
	}
	if VerifyPassword("wrong", hash) {
		t.Fatalf("wrong password must not verify")
	}
}

func TestHash_Salted(t *testing.T) {
	h1, err := HashPassword("same-password")
	if err != nil {
		t.Fatalf("hash failed: %v", err)
	}
	h2, err := HashPassword("same-password")
	if err != nil {
		t.Fatalf("hash failed: %v", err)
	}
	if h1 == h2 {
		t.Fatalf("two hashes of the same password must differ (salting)")
	}
	if !VerifyPassword("same-password", h1) || !VerifyPassword("same-password", h2) {
		t.Fatalf("both salted hashes must verify")
	}
}

func TestVerify_MalformedHash(t *testing.T) {
	if VerifyPassword("anything", "not-a-bcrypt-hash") {
		t.Fatalf("malformed hash must fail closed")
	}
	if VerifyPassword("anything", "") {
		t.Fatalf("empty hash must fail closed")
	}
}
