package index

// goodPrimes are bucket counts that sit roughly midway between powers of two,
// which keeps modulo reduction of a mixed hash evenly spread.
// From https://planetmath.org/goodhashtableprimes, extended downward for
// tiny tables.
var goodPrimes = []int{
	3, 7, 13, 29, 53, 97, 193, 389, 769, 1543, 3079, 6151, 12289, 24593,
	49157, 98317, 196613, 393241, 786433, 1572869, 3145739, 6291469,
	12582917, 25165843, 50331653, 100663319, 201326611, 402653189,
	805306457, 1610612741,
}

// oneAtATime is Jenkins' one-at-a-time hash.
// https://en.wikipedia.org/wiki/Jenkins_hash_function
func oneAtATime(key string) uint32 {
	var h uint32
	for i := 0; i < len(key); i++ {
		h += uint32(key[i])
		h += h << 10
		h ^= h >> 6
	}
	h += h << 3
	h ^= h >> 11
	h += h << 15
	return h
}

// primeAtLeast returns the smallest good prime >= n, or the largest one.
func primeAtLeast(n int) int {
	for _, p := range goodPrimes {
		if p >= n {
			return p
		}
	}
	return goodPrimes[len(goodPrimes)-1]
}
