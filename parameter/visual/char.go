package visual

// RoundChars are drawn for round particles, indexed by weight: small, large
var RoundChars = [2]rune{
	'•',
	'●',
}

// RectChars are drawn for rectangular particles, indexed by 45° orientation bucket
// Rotation 0° is horizontal, buckets advance counter-clockwise
var RectChars = [4]rune{
	'─',
	'╱',
	'│',
	'╲',
}

// BlockChars are drawn for wide rectangular particles, indexed by weight: small, large
var BlockChars = [2]rune{
	'▪',
	'■',
}
