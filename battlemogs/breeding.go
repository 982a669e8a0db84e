package battlemogs

// Breeding implements the pure DNA-mixing kernel: Pair, Segment, Bake, and
// SacrificeJump. All inputs and outputs are fixed-size byte arrays; none of
// these functions touch the host.
//
// The exact byte-level mixing policy here is *not* a recovered original:
// the referenced crate's algorithm.rs was not present in the retrieval
// pack's original_source/ (only dot4gravity and battlemogs-sage's lib/
// error/config/asset/transitions files were retrieved; the
// `use crate::algorithm::{Breeding, Generation};` target was never
// fetched). Per spec.md §9's instruction to derive fixtures from a
// reference run rather than guess, and with no reference run available,
// this file defines one fixed, documented, deterministic policy.
// breeding_test.go checks it with property tests (determinism, row swaps,
// promotion thresholds, headroom), not with golden byte vectors.
var Breeding breedingKernel

type breedingKernel struct{}

// Pair forms child DNA by mixing the two input rows byte by byte. For the
// mixed forms breedType alternates which input row is `a` per byte index
// (DomRez starts with rowA on even indices, RezDom with rowB). DomDom and
// RezRez both take `a` from rowA and `b` from rowB, so they produce the
// same child DNA.
func (breedingKernel) Pair(breedType BreedType, rowA, rowB [32]byte) DNA {
	var child DNA
	for i := 0; i < 32; i++ {
		var a, b byte
		switch breedType {
		case BreedDomDom:
			a, b = rowA[i], rowB[i]
		case BreedRezRez:
			a, b = rowA[i], rowB[i]
		case BreedDomRez:
			if i%2 == 0 {
				a, b = rowA[i], rowB[i]
			} else {
				a, b = rowB[i], rowA[i]
			}
		case BreedRezDom:
			if i%2 == 0 {
				a, b = rowB[i], rowA[i]
			} else {
				a, b = rowA[i], rowB[i]
			}
		}
		// Dominant row: `a` with its low nibble XORed by `b`'s low nibble.
		child[0][i] = a ^ (b & 0x0F)
		// Recessive row: `b` with its high nibble XORed by `a`'s high nibble.
		child[1][i] = b ^ (a & 0xF0)
	}
	return child
}

// Segment re-segments an existing DNA pair post-hatch, using hash as a
// per-byte permutation mask across the two rows: when the low bit of
// hash[i] is set, byte i is swapped between the dominant and recessive row.
func (breedingKernel) Segment(dna DNA, hash [32]byte) DNA {
	next := dna
	for i := 0; i < 32; i++ {
		if hash[i]&0x01 == 1 {
			next[0][i], next[1][i] = dna[1][i], dna[0][i]
		}
	}
	return next
}

// Bake may promote rarity by one step. The promotion chance is derived
// from the hash's mean byte value: a mean at or above 0xC0 promotes.
func (breedingKernel) Bake(rarity RarityType, hash [32]byte) RarityType {
	var sum uint32
	for _, b := range hash {
		sum += uint32(b)
	}
	mean := sum / 32
	if mean >= 0xC0 && rarity < RarityMythical {
		return rarity + 1
	}
	return rarity
}

// SacrificeJump computes a DNA-distance metric between donor and target
// and awards a generation jump in 0..=15 that may never push the target
// past generation 16. Distance is the Hamming weight of the XOR of the two
// dominant rows, scaled by the donor's rarity (higher donor rarity can
// award a larger jump) and capped by the remaining headroom to gen 16.
func (breedingKernel) SacrificeJump(donorGen MogwaiGeneration, donorRarity RarityType, donorDNA DNA, targetGen MogwaiGeneration, targetRarity RarityType, targetDNA DNA) uint8 {
	var bits int
	for i := 0; i < 32; i++ {
		bits += popcount(donorDNA[0][i] ^ targetDNA[0][i])
	}
	// bits is 0..256; fold into 0..15 then scale by donor rarity tier.
	base := uint8(bits / 17) // 256/17 ≈ 15
	scaled := base * (uint8(donorRarity) + 1) / uint8(RarityMythical+1)
	headroom := uint8(0)
	if MaxGeneration > targetGen {
		headroom = uint8(MaxGeneration - targetGen)
	}
	if scaled > headroom {
		scaled = headroom
	}
	if scaled > 15 {
		scaled = 15
	}
	return scaled
}

func popcount(b byte) int {
	n := 0
	for b != 0 {
		n += int(b & 1)
		b >>= 1
	}
	return n
}

// Generation implements Generation::next_gen from spec.md §4.4.
var Generation generationKernel

type generationKernel struct{}

// NextGen returns the child generation (monotone non-decreasing relative
// to the higher parent), a low-nibble rarity (<= source max), and the
// pre-promotion max rarity. hash supplies the randomness for rarity
// promotion chance and generation increment.
func (generationKernel) NextGen(genA MogwaiGeneration, rarA RarityType, genB MogwaiGeneration, rarB RarityType, hash [32]byte) (rarityLowNibble RarityType, nextGen MogwaiGeneration, maxRarity RarityType) {
	maxRarity = rarA
	if rarB > maxRarity {
		maxRarity = rarB
	}
	higherGen := genA
	if genB > higherGen {
		higherGen = genB
	}
	// hash[0] decides whether the child advances a generation beyond the
	// higher parent (roughly 1-in-4 chance, deterministic per hash).
	inc := uint16(0)
	if hash[0]%4 == 0 {
		inc = 1
	}
	nextGen = GenerationFromU16(uint16(higherGen) + inc)

	// hash[1] decides whether rarity is promoted one step from the max
	// parent rarity before being packed into the low nibble.
	rarityLowNibble = maxRarity
	if hash[1]%3 == 0 && maxRarity < RarityMythical {
		rarityLowNibble = maxRarity + 1
	}
	return rarityLowNibble, nextGen, maxRarity
}
