package auth

import "testing"

func TestHashPasswordSaltsFreshly(t *testing.T) {
	first, err := HashPassword("correct horse battery")
	if err != nil {
		t.Fatalf("hash: %v", err)
	}
	second, err := HashPassword("correct horse battery")
	if err != nil {
		t.Fatalf("hash: %v", err)
	}
	if first == second {
		t.Fatalf("two hashes of the same password must differ")
	}
	if !VerifyPassword("correct horse battery", first) {
		t.Fatalf("first hash should verify")
	}
	if !VerifyPassword("correct horse battery", second) {
		t.Fatalf("second hash should verify")
	}
}

func TestVerifyPasswordMismatch(t *testing.T) {
	hash, err := HashPassword("secret1")
	if err != nil {
		t.Fatalf("hash: %v", err)
	}
	if VerifyPassword("secret2", hash) {
		t.Fatalf("wrong password must not verify")
	}
}

func TestVerifyPasswordMalformedHash(t *testing.T) {
	for _, hash := range []string{"", "not-a-bcrypt-hash", "$2a$junk"} {
		if VerifyPassword("anything", hash) {
			t.Fatalf("malformed hash %q must not verify", hash)
		}
	}
}
