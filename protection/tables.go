// Package protection holds the baked per-track protection offset
// tables consumed by the ego-family handlers, plus an override
// surface for callers that have obtained fresher values (normally
// read from track 67.0 of the target disk).
package protection

// ABCChem is the per-track protection offset table for
// abc_chemii_a and abc_chemii_b.
var ABCChem = [160]uint16{
	0x2001, 0x7401, 0x0A57, 0x0A58, 0x0A56, 0x0A59, 0x0A58, 0x0A58,
	0x0A57, 0x0A59, 0x0A57, 0x0A58, 0x0A57, 0x0A57, 0x0A58, 0x0A58,
	0x0A57, 0x0A57, 0x0A58, 0x0A58, 0x0A57, 0x0A58, 0x0A57, 0x0A58,
	0x0A56, 0x0A58, 0x0A57, 0x0A58, 0x0A55, 0x0A58, 0x0A57, 0x0A59,
	0x0A55, 0x0A58, 0x0A56, 0x0A58, 0x0A56, 0x0A58, 0x0A56, 0x0A59,
	0x0A57, 0x0A58, 0x0A58, 0x0A59, 0x0A57, 0x0A58, 0x0A58, 0x0A59,
	0x0A57, 0x0A58, 0x0A57, 0x0A58, 0x0A56, 0x0A57, 0x0A56, 0x0A59,
	0x0A57, 0x0A56, 0x0A57, 0x0A58, 0x0A58, 0x0A57, 0x0A58, 0x0A58,
	0x0A58, 0x0A58, 0x0A57, 0x0A57, 0x0A59, 0x0A58, 0x0A57, 0x0A58,
	0x0A58, 0x0A58, 0x0A58, 0x0A58, 0x0A57, 0x0A58, 0x0A55, 0x0A57,
	0x0A57, 0x0A58, 0x0A56, 0x0A57, 0x0A57, 0x0A58, 0x0A57, 0x0A58,
	0x0A57, 0x0A59, 0x0A58, 0x0A58, 0x0A57, 0x0A59, 0x0A57, 0x0A59,
	0x0A56, 0x0A59, 0x0A57, 0x0A59, 0x0A58, 0x0A58, 0x0A58, 0x0A58,
	0x0A58, 0x0A58, 0x0A59, 0x0A58, 0x0A58, 0x0A58, 0x0A59, 0x0A57,
	0x0A58, 0x0A58, 0x0A57, 0x0A58, 0x0A57, 0x0A58, 0x0A59, 0x0A57,
	0x0A55, 0x0A56, 0x0A55, 0x0A56, 0x0A55, 0x0A56, 0x0A55, 0x0A57,
	0x0A55, 0x0A56, 0x0A55, 0x0A55, 0x0A55, 0x0A55, 0x0A56, 0x0A55,
	0x0A56, 0x0A56, 0x0A56, 0x0A56, 0x0A55, 0x0A56, 0x0A55, 0x0A56,
	0x0A54, 0x0A56, 0x0A55, 0x0A56, 0x0A56, 0x0A56, 0x0A56, 0x0A56,
	0x0A55, 0x0A56, 0x0A57, 0x0A56, 0x0A57, 0x0A56, 0x0A57, 0x0A56,
}

// ABCChemTimsoft is the per-track protection offset table for
// abc_chemii_timsoft_a and abc_chemii_timsoft_b.
var ABCChemTimsoft = [160]uint16{
	0x0200, 0xFFFF, 0x0BB3, 0x0B98, 0x0BC8, 0x0B9A, 0x0BBA, 0x0B9B,
	0x0BC7, 0x0BA8, 0x0BBE, 0x0BA0, 0x0BA8, 0x0BA1, 0x0BB1, 0x0BA6,
	0x0BC1, 0x0B9D, 0x0BBE, 0x0BB3, 0x0BAF, 0x0BA8, 0x0BA1, 0x0B9D,
	0x0BAF, 0x0B95, 0x0BAD, 0x0BA8, 0x0BBF, 0x0BB0, 0x0B9F, 0x0BA7,
	0x0BC0, 0x0B9C, 0x0BB1, 0x0B9A, 0x0BB7, 0x0B98, 0x0BAB, 0x0B9E,
	0x0BB7, 0x0BA6, 0x0BB8, 0x0B9B, 0x0BB3, 0x0BA4, 0x0BA5, 0x0B95,
	0x0BB7, 0x0BA5, 0x0BB2, 0x0BA3, 0x0BA8, 0x0BA0, 0x0B9F, 0x0BA8,
	0x0BAA, 0x0BA8, 0x0BB9, 0x0BA3, 0x0BA6, 0x0B9C, 0x0BA9, 0x0BA7,
	0x0BA3, 0x0B9A, 0x0BBD, 0x0B9D, 0x0BB0, 0x0B97, 0x0BAE, 0x0BA1,
	0x0B9E, 0x0BA5, 0x0BA1, 0x0BA2, 0x0B9C, 0x0B9B, 0x0BA8, 0x0BB4,
	0x0BAF, 0x0B9A, 0x0BA1, 0x0B9A, 0x0BA4, 0x0B9F, 0x0BAF, 0x0BAC,
	0x0BA3, 0x0BA1, 0x0BA4, 0x0BA2, 0x0BAF, 0x0BA6, 0x0BA0, 0x0BAE,
	0x0BB7, 0x0BA7, 0x0BA4, 0x0BAA, 0x0BA1, 0x0B9E, 0x0BAD, 0x0BA1,
	0x0BA7, 0x0BAC, 0x0BB2, 0x0BA7, 0x0BB7, 0x0BA5, 0x0BB3, 0x0BAA,
	0x0BAA, 0x0BA4, 0x0BA3, 0x0B9D, 0x0BB0, 0x0BA7, 0x0BA6, 0x0BA3,
	0x0BB6, 0x0BAB, 0x0BAE, 0x0BA9, 0x0BA0, 0x0BAE, 0x0BA8, 0x0BA1,
	0x0BAD, 0x0BA6, 0x0B87, 0x0B8B, 0x0BA8, 0x0B9B, 0x0BA3, 0x0BAD,
	0x0BBB, 0x0B9C, 0x0BAB, 0x0BA8, 0x0BBC, 0x0B9C, 0x0BA4, 0x0BAA,
	0x0BB0, 0x0B9F, 0x0B9C, 0x0BA0, 0x0BB0, 0x0BA7, 0x0BA3, 0x0B9A,
	0x0BB2, 0x0BAC, 0x0B8D, 0x0BA8, 0x0BB5, 0x0BA2, 0x0BAE, 0x0BA7,
}

// Inferior is the per-track protection offset table for the
// inferior format.
var Inferior = [160]uint16{
	0x0A32, 0x0A34, 0x0A30, 0x0A31, 0x0A2E, 0x0A36, 0x0A2D, 0x0A33,
	0x0A25, 0x0A34, 0x0A2D, 0x0A33, 0x0A2F, 0x0A32, 0x0A32, 0x0A32,
	0x0A35, 0x0A32, 0x0A31, 0x0A32, 0x0A2F, 0x0A34, 0x0A2D, 0x0A30,
	0x0A2E, 0x0A33, 0x0A2B, 0x0A31, 0x0A2F, 0x0A33, 0x0A2E, 0x0A33,
	0x0A2F, 0x0A33, 0x0A2E, 0x0A32, 0x0A2E, 0x0A31, 0x0A2E, 0x0A32,
	0x0A2D, 0x0A33, 0x0A2E, 0x0A34, 0x0A2D, 0x0A34, 0x0A2D, 0x0A31,
	0x0A2F, 0x0A31, 0x0A2F, 0x0A30, 0x0A2F, 0x0A32, 0x0A30, 0x0A31,
	0x0A2D, 0x0A34, 0x0A30, 0x0A31, 0x0A2E, 0x0A32, 0x0A2B, 0x0A30,
	0x0A2E, 0x0A32, 0x0A2E, 0x0A31, 0x0A30, 0x0A33, 0x0A2D, 0x0A32,
	0x0A2E, 0x0A32, 0x0A2E, 0x0A32, 0x0A2C, 0x0A33, 0x0A2F, 0x0A31,
	0x0A2E, 0x0A34, 0x0A2D, 0x0A33, 0x0A2E, 0x0A32, 0x0A2D, 0x0A31,
	0x0A31, 0x0A31, 0x0A30, 0x0A32, 0x0A2F, 0x0A31, 0x0A31, 0x0A32,
	0x0A2F, 0x0A32, 0x0A34, 0x0A2E, 0x0A30, 0x0A32, 0x0A2E, 0x0A31,
	0x0A2F, 0x0A33, 0x0A2F, 0x0A33, 0x0A30, 0x0A33, 0x0A2D, 0x0A34,
	0x0A2F, 0x0A31, 0x0A2E, 0x0A32, 0x0A31, 0x0A32, 0x0A2F, 0x0A32,
	0x0A30, 0x0A34, 0x0A2D, 0x0A31, 0x0A2E, 0x0A32, 0x0A2E, 0x0A30,
	0x0A2F, 0x0A30, 0x0A30, 0x0A31, 0x0A2D, 0x0A30, 0x0A32, 0x0A31,
	0x0A2D, 0x0A32, 0x0A2E, 0x0A32, 0x0A2B, 0x0A33, 0x0A2C, 0x0A33,
	0x0A2B, 0x0A34, 0x0A2A, 0x0A34, 0x0A2E, 0x0A31, 0x0A2C, 0x0A31,
	0x0A28, 0x0A33, 0x0A2A, 0x0A32, 0x0A26, 0x0A35, 0x0A29, 0x0000,
}
