package battlemogs

import "testing"

func TestBreedingPairDeterministic(t *testing.T) {
	var rowA, rowB [32]byte
	for i := range rowA {
		rowA[i] = byte(i)
		rowB[i] = byte(255 - i)
	}

	first := Breeding.Pair(BreedDomDom, rowA, rowB)
	second := Breeding.Pair(BreedDomDom, rowA, rowB)
	if first != second {
		t.Fatalf("Pair is not deterministic: %v != %v", first, second)
	}

	domDom := Breeding.Pair(BreedDomDom, rowA, rowB)
	rezRez := Breeding.Pair(BreedRezRez, rowA, rowB)
	domRez := Breeding.Pair(BreedDomRez, rowA, rowB)
	rezDom := Breeding.Pair(BreedRezDom, rowA, rowB)
	if domRez == rezDom {
		t.Fatalf("DomRez and RezDom must diverge for asymmetric input rows")
	}
	_ = domDom
	_ = rezRez
}

func TestBreedingSegmentPreservesByteSet(t *testing.T) {
	var dna DNA
	for i := 0; i < 32; i++ {
		dna[0][i] = byte(i)
		dna[1][i] = byte(i + 100)
	}
	var hash [32]byte
	for i := range hash {
		hash[i] = byte(i % 2) // every other byte flips
	}
	next := Breeding.Segment(dna, hash)
	for i := 0; i < 32; i++ {
		if hash[i]&0x01 == 1 {
			if next[0][i] != dna[1][i] || next[1][i] != dna[0][i] {
				t.Fatalf("byte %d should have swapped rows", i)
			}
		} else {
			if next[0][i] != dna[0][i] || next[1][i] != dna[1][i] {
				t.Fatalf("byte %d should be unchanged", i)
			}
		}
	}
}

func TestBreedingBakePromotesOnHighMeanHash(t *testing.T) {
	var high [32]byte
	for i := range high {
		high[i] = 0xFF
	}
	if got := Breeding.Bake(RarityCommon, high); got != RarityUncommon {
		t.Fatalf("expected promotion to Uncommon, got %v", got)
	}

	var low [32]byte // all zero
	if got := Breeding.Bake(RarityCommon, low); got != RarityCommon {
		t.Fatalf("expected no promotion, got %v", got)
	}

	if got := Breeding.Bake(RarityMythical, high); got != RarityMythical {
		t.Fatalf("Mythical must be absorbing, got %v", got)
	}
}

func TestSacrificeJumpNeverExceedsHeadroom(t *testing.T) {
	var donorDNA, targetDNA DNA
	for i := range donorDNA[0] {
		donorDNA[0][i] = 0xFF
		targetDNA[0][i] = 0x00
	}
	jump := Breeding.SacrificeJump(MinGeneration, RarityMythical, donorDNA, MaxGeneration, RarityCommon, targetDNA)
	if jump != 0 {
		t.Fatalf("target already at MaxGeneration must have zero headroom, got %d", jump)
	}

	jump = Breeding.SacrificeJump(MinGeneration, RarityMythical, donorDNA, MinGeneration, RarityCommon, targetDNA)
	if uint16(MinGeneration)+uint16(jump) > uint16(MaxGeneration) {
		t.Fatalf("jump must never push target past MaxGeneration, got jump=%d", jump)
	}
}

func TestGenerationNextGenMonotone(t *testing.T) {
	var hash [32]byte
	_, nextGen, _ := Generation.NextGen(MogwaiGeneration(5), RarityCommon, MogwaiGeneration(3), RarityCommon, hash)
	if nextGen < 5 {
		t.Fatalf("child generation must be >= the higher parent's generation, got %d", nextGen)
	}
}

func TestCalculateBreedTypeTable(t *testing.T) {
	cases := []struct {
		height uint64
		want   BreedType
	}{
		{0, BreedDomDom},
		{19, BreedDomDom},
		{20, BreedDomRez},
		{39, BreedDomRez},
		{40, BreedRezDom},
		{59, BreedRezDom},
		{60, BreedRezRez},
		{79, BreedRezRez},
		{80, BreedDomDom}, // wraps mod 80
	}
	for _, c := range cases {
		if got := CalculateBreedType(c.height); got != c.want {
			t.Errorf("CalculateBreedType(%d) = %v, want %v", c.height, got, c.want)
		}
	}
}
