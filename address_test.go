package procmock

import "testing"

func TestAddressEqual(t *testing.T) {
	type testCase struct {
		name string
		a    Address
		b    Address
		want bool
	}

	testCases := []testCase{
		{name: "Equal Two Segments", a: Address{"fs", "read"}, b: Address{"fs", "read"}, want: true},
		{name: "Different Last Segment", a: Address{"fs", "read"}, b: Address{"fs", "readFile"}, want: false},
		{name: "Reversed Segments", a: Address{"fs", "read"}, b: Address{"read", "fs"}, want: false},
		{name: "Prefix Is Not Equal", a: Address{"fs", "read"}, b: Address{"fs"}, want: false},
		{name: "Both Empty", a: Address{}, b: Address{}, want: true},
		{name: "Nil Equals Empty", a: nil, b: Address{}, want: true},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			if got := tc.a.Equal(tc.b); got != tc.want {
				t.Fatalf("Equal(%v, %v) = %v, want %v", tc.a, tc.b, got, tc.want)
			}
			if got := tc.b.Equal(tc.a); got != tc.want {
				t.Fatalf("Equal(%v, %v) = %v, want %v", tc.b, tc.a, got, tc.want)
			}
		})
	}
}

func TestAddressKey(t *testing.T) {
	t.Run("Length Prefixed Encoding", func(t *testing.T) {
		if got, want := (Address{"fs", "read"}).Key(), "2:fs/4:read"; got != want {
			t.Fatalf("Key() = %q, want %q", got, want)
		}
	})

	t.Run("No False Collisions", func(t *testing.T) {
		// Sequences that naive separator joins would conflate.
		addresses := []Address{
			{"fs", "read"},
			{"fs/read"},
			{"fs", "rea", "d"},
			{"f", "sread"},
			{"2:fs", "read"},
			{},
		}

		seen := make(map[string]Address)
		for _, address := range addresses {
			key := address.Key()
			if prior, ok := seen[key]; ok {
				t.Fatalf("addresses %v and %v share key %q", prior, address, key)
			}
			seen[key] = address
		}
	})
}

func TestAddr(t *testing.T) {
	address := Addr("fs", "read")
	if !address.Equal(Address{"fs", "read"}) {
		t.Fatalf("Addr built unexpected address %v", address)
	}
	if got, want := address.String(), "fs/read"; got != want {
		t.Fatalf("String() = %q, want %q", got, want)
	}
}
