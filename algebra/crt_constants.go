package algebra

// BasisSize is the number of primes in the CRT basis. The full basis
// supports a 521-bit ambient field; prefixes of 9 and 13 primes support
// 256- and 384-bit fields.
const BasisSize = 17

// OmegaOrder is the multiplicative order of every basis root of unity.
const OmegaOrder uint64 = 1 << 22

// Primes17 lists the basis primes in strictly ascending order. Each prime
// exceeds 2^63 and each p-1 is divisible by 2^22.
var Primes17 = [BasisSize]uint64{
	18446744072195407873, 18446744072237350913, 18446744072245739521,
	18446744072325431297, 18446744072589672449, 18446744072623226881,
	18446744072790999041, 18446744073113960449, 18446744073290121217,
	18446744073327869953, 18446744073332064257, 18446744073344647169,
	18446744073420144641, 18446744073457893377, 18446744073516613633,
	18446744073520807937, 18446744073692774401,
}

// Omega17 holds, for each basis prime, a root of unity of order exactly
// 2^22, stored as a natural to be lifted with OfScalar.
var Omega17 = [BasisSize]uint64{
	436037131817, 2773676930123, 2768111518080, 34106487772798,
	1302264167001, 5572414085664, 4170236488818, 10930506752996,
	13447610733542, 366878793395, 10535270759408, 2630106726088,
	2766923619799, 6957320847870, 10540913985379, 15095618916269,
	3150424293220,
}
