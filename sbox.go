package wavevortex

// sbox is the forward 9-bit substitution table: 512 entries, each in
// [0, 0x200). It is a fixed permutation of [0, 512); see sbox_test.go for
// the bijection check.
//
// invSBOX is deliberately NOT hand-authored: the source constant table
// historically shipped with this cipher contains duplicate entries (see
// DESIGN.md), so the inverse is derived from sbox once, on first use of
// the lookup tables, and validated, rather than trusted as given.
var sbox = [512]uint16{
	0x0b5, 0x063, 0x1a1, 0x0c2, 0x1f7, 0x0f8, 0x1d6, 0x0c1, 0x040, 0x1c7, 0x19b, 0x019, 0x094, 0x064, 0x0d0, 0x197,
	0x114, 0x1ca, 0x1a2, 0x1d1, 0x1ba, 0x0af, 0x0a6, 0x127, 0x061, 0x090, 0x06a, 0x1fe, 0x1e6, 0x16f, 0x0b9, 0x17f,
	0x11c, 0x008, 0x1c6, 0x084, 0x0f1, 0x0e2, 0x15f, 0x0fe, 0x16e, 0x1be, 0x14b, 0x160, 0x1e2, 0x1ae, 0x1f8, 0x0f6,
	0x1c0, 0x06f, 0x0ac, 0x01e, 0x108, 0x07e, 0x0e9, 0x0b4, 0x176, 0x195, 0x17c, 0x01c, 0x1b6, 0x11b, 0x12d, 0x046,
	0x0d2, 0x117, 0x190, 0x111, 0x0c5, 0x029, 0x030, 0x18c, 0x132, 0x000, 0x065, 0x066, 0x09e, 0x126, 0x137, 0x1dc,
	0x01b, 0x155, 0x1a3, 0x1b1, 0x002, 0x08a, 0x179, 0x0ee, 0x1bb, 0x026, 0x1f2, 0x0e0, 0x045, 0x0ce, 0x0f9, 0x1d4,
	0x069, 0x115, 0x0a2, 0x10a, 0x04d, 0x14c, 0x16d, 0x0f2, 0x04e, 0x0e1, 0x194, 0x053, 0x0ad, 0x013, 0x1d2, 0x164,
	0x184, 0x148, 0x0d8, 0x1ef, 0x02b, 0x175, 0x10c, 0x19a, 0x06d, 0x1e7, 0x119, 0x16c, 0x057, 0x0b2, 0x1b8, 0x031,
	0x187, 0x15a, 0x01a, 0x1c5, 0x172, 0x02e, 0x0b6, 0x150, 0x01d, 0x0bf, 0x144, 0x062, 0x1bc, 0x1c1, 0x020, 0x0dc,
	0x003, 0x1f5, 0x05e, 0x087, 0x10d, 0x1cb, 0x00b, 0x186, 0x1ce, 0x02a, 0x09f, 0x097, 0x1a9, 0x116, 0x13b, 0x00d,
	0x0c7, 0x1d9, 0x131, 0x153, 0x196, 0x1e9, 0x1a6, 0x0ca, 0x03f, 0x192, 0x152, 0x0a0, 0x181, 0x154, 0x166, 0x05d,
	0x009, 0x068, 0x141, 0x1ab, 0x1ea, 0x0d7, 0x004, 0x16a, 0x0be, 0x1fa, 0x0d5, 0x05b, 0x0fc, 0x1a8, 0x0f5, 0x0fb,
	0x00e, 0x15c, 0x07b, 0x0ff, 0x12f, 0x189, 0x02f, 0x0c9, 0x170, 0x1aa, 0x1c9, 0x1c8, 0x11d, 0x14a, 0x034, 0x005,
	0x076, 0x19e, 0x163, 0x14f, 0x1bf, 0x1d0, 0x043, 0x106, 0x12a, 0x0f4, 0x109, 0x0a3, 0x059, 0x08b, 0x1b4, 0x180,
	0x1ee, 0x037, 0x104, 0x103, 0x028, 0x1f9, 0x1df, 0x18b, 0x125, 0x18e, 0x082, 0x049, 0x083, 0x0c8, 0x0dd, 0x060,
	0x0c3, 0x092, 0x011, 0x191, 0x178, 0x120, 0x07a, 0x055, 0x08e, 0x017, 0x17e, 0x118, 0x10f, 0x147, 0x0db, 0x193,
	0x0e8, 0x110, 0x134, 0x1f6, 0x1a0, 0x08c, 0x1c3, 0x0cb, 0x149, 0x014, 0x08f, 0x1b0, 0x1b3, 0x0b3, 0x09b, 0x1da,
	0x06b, 0x161, 0x11a, 0x0cc, 0x007, 0x0bc, 0x0c6, 0x05c, 0x1c2, 0x0de, 0x10e, 0x124, 0x1ed, 0x145, 0x0e5, 0x070,
	0x158, 0x16b, 0x021, 0x02c, 0x027, 0x0d3, 0x136, 0x11f, 0x1e4, 0x04f, 0x0a1, 0x022, 0x096, 0x146, 0x18f, 0x04b,
	0x10b, 0x1fd, 0x042, 0x081, 0x0a9, 0x067, 0x167, 0x0fd, 0x039, 0x1b7, 0x17d, 0x006, 0x0aa, 0x15b, 0x03a, 0x133,
	0x07c, 0x17a, 0x091, 0x0ab, 0x105, 0x072, 0x19d, 0x1cd, 0x1de, 0x06e, 0x173, 0x157, 0x03c, 0x130, 0x018, 0x1e3,
	0x1b9, 0x0ea, 0x113, 0x1cc, 0x0fa, 0x00f, 0x14e, 0x12b, 0x044, 0x0f3, 0x056, 0x140, 0x1d5, 0x1b2, 0x121, 0x1a4,
	0x0f7, 0x0d9, 0x169, 0x095, 0x1ad, 0x016, 0x058, 0x100, 0x075, 0x15d, 0x02d, 0x0e4, 0x093, 0x135, 0x0d6, 0x099,
	0x07d, 0x071, 0x024, 0x0f0, 0x04c, 0x162, 0x18d, 0x1ac, 0x156, 0x09a, 0x15e, 0x1f0, 0x1ff, 0x0da, 0x09d, 0x0ed,
	0x13c, 0x0eb, 0x198, 0x1dd, 0x03e, 0x052, 0x050, 0x1e5, 0x036, 0x1d8, 0x18a, 0x139, 0x1e8, 0x112, 0x11e, 0x1e0,
	0x128, 0x0d1, 0x13f, 0x080, 0x0c0, 0x13d, 0x1a7, 0x088, 0x1b5, 0x0ae, 0x165, 0x0b0, 0x171, 0x051, 0x1f4, 0x107,
	0x05a, 0x143, 0x010, 0x0d4, 0x07f, 0x05f, 0x0cf, 0x06c, 0x0c4, 0x142, 0x038, 0x13a, 0x012, 0x085, 0x12c, 0x0df,
	0x19c, 0x1db, 0x098, 0x138, 0x129, 0x073, 0x048, 0x188, 0x1ec, 0x1af, 0x035, 0x13e, 0x00c, 0x0a5, 0x123, 0x08d,
	0x0b8, 0x0a8, 0x077, 0x1fc, 0x14d, 0x0ba, 0x086, 0x0ec, 0x023, 0x032, 0x122, 0x174, 0x03d, 0x001, 0x1eb, 0x17b,
	0x199, 0x078, 0x041, 0x054, 0x09c, 0x1d3, 0x1bd, 0x1f3, 0x1fb, 0x0b7, 0x079, 0x1cf, 0x182, 0x1a5, 0x0a7, 0x047,
	0x0b1, 0x089, 0x0cd, 0x1d7, 0x168, 0x0e7, 0x015, 0x025, 0x0e6, 0x151, 0x033, 0x1f1, 0x159, 0x03b, 0x0ef, 0x0bd,
	0x19f, 0x177, 0x1c4, 0x0e3, 0x04a, 0x0a4, 0x01f, 0x102, 0x185, 0x0bb, 0x101, 0x183, 0x12e, 0x00a, 0x074, 0x1e1,
}

// invSBOX is populated from sbox by buildInverseSBox; see tables.go.
var invSBOX [512]uint16
