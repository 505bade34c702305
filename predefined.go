package typerand

// Predefined scalar catalogs. Generation picks uniformly from these and hands
// out clones, so callers can never alias or mutate a catalog entry.

// PredefinedIntegers enumerates the 16 integer variants:
// 8/16/32/64-bit, signed and unsigned, big- and little-endian.
var PredefinedIntegers = [16]IntegerType{
	{Width: 8, Signed: true, Order: OrderBigEndian},
	{Width: 8, Signed: true, Order: OrderLittleEndian},
	{Width: 16, Signed: true, Order: OrderBigEndian},
	{Width: 16, Signed: true, Order: OrderLittleEndian},
	{Width: 32, Signed: true, Order: OrderBigEndian},
	{Width: 32, Signed: true, Order: OrderLittleEndian},
	{Width: 64, Signed: true, Order: OrderBigEndian},
	{Width: 64, Signed: true, Order: OrderLittleEndian},
	{Width: 8, Signed: false, Order: OrderBigEndian},
	{Width: 8, Signed: false, Order: OrderLittleEndian},
	{Width: 16, Signed: false, Order: OrderBigEndian},
	{Width: 16, Signed: false, Order: OrderLittleEndian},
	{Width: 32, Signed: false, Order: OrderBigEndian},
	{Width: 32, Signed: false, Order: OrderLittleEndian},
	{Width: 64, Signed: false, Order: OrderBigEndian},
	{Width: 64, Signed: false, Order: OrderLittleEndian},
}

// PredefinedFloats enumerates the 4 IEEE 754 variants:
// 32/64-bit, big- and little-endian.
var PredefinedFloats = [4]FloatType{
	{Width: 32, Order: OrderBigEndian},
	{Width: 32, Order: OrderLittleEndian},
	{Width: 64, Order: OrderBigEndian},
	{Width: 64, Order: OrderLittleEndian},
}
