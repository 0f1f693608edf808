package noise_test

// Reference byte arrays (value*0xff truncated), frame by frame.

var uniformGolden = []uint8{
	0xb6, 0xe0, 0xc4, 0x94, 0x3e, 0x0a, 0xc6, 0x8c,
	0xb2, 0x14, 0x1f, 0x1f, 0x3e, 0x2e, 0x08, 0x92,
	0xaa, 0xb6, 0x9d, 0x57, 0xf4, 0xb7, 0xba, 0x1c,
	0x52, 0x89, 0xe5, 0xdb, 0x7d, 0xc7, 0x52, 0x2b,
	0x15, 0xc4, 0xb9, 0x46, 0xca, 0x44, 0x01, 0xae,
	0x48, 0xee, 0x63, 0x8b, 0xf7, 0xbc, 0xa5, 0x0a,
	0x8c, 0x21, 0xf7, 0x71, 0x99, 0x2c, 0xa9, 0x8a,
	0x99, 0xa8, 0xba, 0xd9, 0x0b, 0xd8, 0x85, 0xc9,

	0xe4, 0x10, 0xc0, 0xf3, 0xf5, 0x17, 0xf4, 0x93,
	0xd7, 0x72, 0x80, 0xd2, 0x6a, 0xc8, 0x5d, 0xee,
	0xb7, 0xce, 0x10, 0x27, 0x7d, 0x7f, 0xe5, 0xfd,
	0x5d, 0x91, 0xb4, 0x01, 0x78, 0x02, 0x5d, 0x1b,
	0x04, 0x20, 0xb8, 0x23, 0x50, 0xc2, 0x67, 0x45,
	0x94, 0x12, 0x72, 0x00, 0x67, 0x22, 0x63, 0xa4,
	0x66, 0x79, 0x77, 0xa5, 0xf8, 0xcf, 0x46, 0xc2,
	0xe6, 0x73, 0xa0, 0xa5, 0xb4, 0x16, 0x04, 0x4c,
}

var unitNoiseGolden = []uint8{
	0x60, 0x5d, 0x5a, 0x57, 0x54, 0x56, 0x58, 0x5a,
	0x5f, 0x5e, 0x5e, 0x5e, 0x5e, 0x58, 0x52, 0x4c,
	0x5e, 0x60, 0x63, 0x66, 0x69, 0x5b, 0x4d, 0x3f,
	0x5d, 0x62, 0x68, 0x6e, 0x74, 0x5e, 0x47, 0x31,
	0x5c, 0x64, 0x6d, 0x76, 0x7f, 0x60, 0x42, 0x24,
	0x46, 0x4e, 0x57, 0x5f, 0x67, 0x5d, 0x53, 0x49,
	0x31, 0x38, 0x40, 0x48, 0x50, 0x5a, 0x64, 0x6f,
	0x1b, 0x22, 0x2a, 0x31, 0x38, 0x57, 0x75, 0x94,

	0x49, 0x48, 0x48, 0x47, 0x47, 0x55, 0x63, 0x72,
	0x57, 0x56, 0x55, 0x54, 0x53, 0x5a, 0x62, 0x69,
	0x64, 0x63, 0x62, 0x61, 0x60, 0x60, 0x60, 0x60,
	0x72, 0x71, 0x6f, 0x6e, 0x6c, 0x65, 0x5e, 0x58,
	0x80, 0x7e, 0x7c, 0x7a, 0x79, 0x6b, 0x5d, 0x4f,
	0x70, 0x6e, 0x6c, 0x69, 0x67, 0x65, 0x64, 0x62,
	0x61, 0x5e, 0x5b, 0x59, 0x56, 0x60, 0x6b, 0x75,
	0x51, 0x4e, 0x4b, 0x48, 0x45, 0x5b, 0x72, 0x88,

	0x33, 0x34, 0x36, 0x38, 0x3a, 0x55, 0x6f, 0x8a,
	0x4f, 0x4d, 0x4c, 0x4a, 0x48, 0x5d, 0x71, 0x86,
	0x6b, 0x66, 0x61, 0x5c, 0x56, 0x65, 0x73, 0x82,
	0x88, 0x7f, 0x76, 0x6d, 0x64, 0x6d, 0x76, 0x7e,
	0xa4, 0x98, 0x8b, 0x7f, 0x73, 0x75, 0x78, 0x7a,
	0x9a, 0x8e, 0x81, 0x74, 0x67, 0x6e, 0x74, 0x7b,
	0x91, 0x83, 0x76, 0x69, 0x5c, 0x67, 0x71, 0x7b,
	0x87, 0x79, 0x6c, 0x5f, 0x51, 0x5f, 0x6e, 0x7c,
}

var cosineCurtainsGolden = []uint8{
	0x60, 0x5e, 0x5a, 0x55, 0x54, 0x55, 0x58, 0x5a,
	0x60, 0x5e, 0x5a, 0x55, 0x54, 0x55, 0x58, 0x5a,
	0x60, 0x5e, 0x5a, 0x55, 0x54, 0x55, 0x58, 0x5a,
	0x60, 0x5e, 0x5a, 0x55, 0x54, 0x55, 0x58, 0x5a,
	0x60, 0x5e, 0x5a, 0x55, 0x54, 0x55, 0x58, 0x5a,
	0x60, 0x5e, 0x5a, 0x55, 0x54, 0x55, 0x58, 0x5a,
	0x60, 0x5e, 0x5a, 0x55, 0x54, 0x55, 0x58, 0x5a,
	0x60, 0x5e, 0x5a, 0x55, 0x54, 0x55, 0x58, 0x5a,

	0x5f, 0x5e, 0x5c, 0x5b, 0x5a, 0x58, 0x54, 0x51,
	0x5f, 0x5e, 0x5c, 0x5b, 0x5a, 0x58, 0x54, 0x51,
	0x5f, 0x5e, 0x5c, 0x5b, 0x5a, 0x58, 0x54, 0x51,
	0x5f, 0x5e, 0x5c, 0x5b, 0x5a, 0x58, 0x54, 0x51,
	0x5f, 0x5e, 0x5c, 0x5b, 0x5a, 0x58, 0x54, 0x51,
	0x5f, 0x5e, 0x5c, 0x5b, 0x5a, 0x58, 0x54, 0x51,
	0x5f, 0x5e, 0x5c, 0x5b, 0x5a, 0x58, 0x54, 0x51,
	0x5f, 0x5e, 0x5c, 0x5b, 0x5a, 0x58, 0x54, 0x51,

	0x5e, 0x5f, 0x63, 0x67, 0x69, 0x61, 0x4d, 0x39,
	0x5e, 0x5f, 0x63, 0x67, 0x69, 0x61, 0x4d, 0x39,
	0x5e, 0x5f, 0x63, 0x67, 0x69, 0x61, 0x4d, 0x39,
	0x5e, 0x5f, 0x63, 0x67, 0x69, 0x61, 0x4d, 0x39,
	0x5e, 0x5f, 0x63, 0x67, 0x69, 0x61, 0x4d, 0x39,
	0x5e, 0x5f, 0x63, 0x67, 0x69, 0x61, 0x4d, 0x39,
	0x5e, 0x5f, 0x63, 0x67, 0x69, 0x61, 0x4d, 0x39,
	0x5e, 0x5f, 0x63, 0x67, 0x69, 0x61, 0x4d, 0x39,
}

var curtainsGolden = []uint8{
	0x60, 0x5a, 0x54, 0x58, 0x5c, 0x6d, 0x7f, 0x42,
	0x60, 0x5a, 0x54, 0x58, 0x5c, 0x6d, 0x7f, 0x42,
	0x60, 0x5a, 0x54, 0x58, 0x5c, 0x6d, 0x7f, 0x42,
	0x60, 0x5a, 0x54, 0x58, 0x5c, 0x6d, 0x7f, 0x42,
	0x60, 0x5a, 0x54, 0x58, 0x5c, 0x6d, 0x7f, 0x42,
	0x60, 0x5a, 0x54, 0x58, 0x5c, 0x6d, 0x7f, 0x42,
	0x60, 0x5a, 0x54, 0x58, 0x5c, 0x6d, 0x7f, 0x42,
	0x60, 0x5a, 0x54, 0x58, 0x5c, 0x6d, 0x7f, 0x42,

	0x33, 0x36, 0x3a, 0x6f, 0xa4, 0x8b, 0x73, 0x78,
	0x33, 0x36, 0x3a, 0x6f, 0xa4, 0x8b, 0x73, 0x78,
	0x33, 0x36, 0x3a, 0x6f, 0xa4, 0x8b, 0x73, 0x78,
	0x33, 0x36, 0x3a, 0x6f, 0xa4, 0x8b, 0x73, 0x78,
	0x33, 0x36, 0x3a, 0x6f, 0xa4, 0x8b, 0x73, 0x78,
	0x33, 0x36, 0x3a, 0x6f, 0xa4, 0x8b, 0x73, 0x78,
	0x33, 0x36, 0x3a, 0x6f, 0xa4, 0x8b, 0x73, 0x78,
	0x33, 0x36, 0x3a, 0x6f, 0xa4, 0x8b, 0x73, 0x78,

	0x06, 0x13, 0x21, 0x87, 0xed, 0xaa, 0x67, 0xae,
	0x06, 0x13, 0x21, 0x87, 0xed, 0xaa, 0x67, 0xae,
	0x06, 0x13, 0x21, 0x87, 0xed, 0xaa, 0x67, 0xae,
	0x06, 0x13, 0x21, 0x87, 0xed, 0xaa, 0x67, 0xae,
	0x06, 0x13, 0x21, 0x87, 0xed, 0xaa, 0x67, 0xae,
	0x06, 0x13, 0x21, 0x87, 0xed, 0xaa, 0x67, 0xae,
	0x06, 0x13, 0x21, 0x87, 0xed, 0xaa, 0x67, 0xae,
	0x06, 0x13, 0x21, 0x87, 0xed, 0xaa, 0x67, 0xae,
}

var worleyGolden = []uint8{
	0x39, 0x28, 0x39, 0x5a, 0x7f, 0xa6, 0xcd, 0xf5,
	0x28, 0x00, 0x28, 0x50, 0x78, 0xa1, 0xc9, 0xe7,
	0x00, 0x28, 0x39, 0x5a, 0x7f, 0xa6, 0xb8, 0xc5,
	0x28, 0x39, 0x5a, 0x72, 0x91, 0x91, 0x96, 0xa6,
	0x39, 0x45, 0x62, 0x85, 0x78, 0x72, 0x78, 0x8b,
	0x5a, 0x62, 0x78, 0x78, 0x62, 0x5a, 0x62, 0x78,
	0x7f, 0x85, 0x85, 0x62, 0x45, 0x39, 0x45, 0x62,
	0xa6, 0xa6, 0x7f, 0x5a, 0x39, 0x28, 0x39, 0x5a,
	0xcd, 0xab, 0x85, 0x62, 0x45, 0x39, 0x45, 0x62,
	0xd1, 0xab, 0x85, 0x62, 0x45, 0x39, 0x45, 0x62,
	0xcd, 0xa6, 0x7f, 0x5a, 0x39, 0x28, 0x39, 0x5a,
	0xd1, 0xab, 0x85, 0x62, 0x45, 0x39, 0x45, 0x62,

	0x45, 0x39, 0x45, 0x62, 0x85, 0xab, 0xd1, 0xf8,
	0x39, 0x28, 0x39, 0x5a, 0x7f, 0xa6, 0xcd, 0xdc,
	0x28, 0x39, 0x45, 0x62, 0x85, 0xa6, 0xab, 0xb8,
	0x00, 0x28, 0x50, 0x78, 0x85, 0x7f, 0x85, 0x96,
	0x28, 0x39, 0x5a, 0x78, 0x62, 0x5a, 0x62, 0x78,
	0x50, 0x5a, 0x72, 0x62, 0x45, 0x39, 0x45, 0x62,
	0x78, 0x7f, 0x7f, 0x5a, 0x39, 0x28, 0x39, 0x5a,
	0xa1, 0xa1, 0x78, 0x50, 0x28, 0x00, 0x28, 0x50,
	0xc9, 0xa6, 0x7f, 0x5a, 0x39, 0x28, 0x39, 0x5a,
	0xcd, 0xa6, 0x7f, 0x5a, 0x39, 0x28, 0x39, 0x5a,
	0xc9, 0xa1, 0x78, 0x50, 0x28, 0x00, 0x28, 0x50,
	0xcd, 0xa6, 0x7f, 0x5a, 0x39, 0x28, 0x39, 0x5a,

	0x62, 0x5a, 0x62, 0x78, 0x96, 0xb8, 0xdc, 0xff,
	0x5a, 0x50, 0x5a, 0x72, 0x91, 0xb4, 0xcd, 0xd9,
	0x39, 0x45, 0x62, 0x78, 0x96, 0xa1, 0xa6, 0xb4,
	0x28, 0x39, 0x5a, 0x7f, 0x7f, 0x78, 0x7f, 0x91,
	0x39, 0x45, 0x62, 0x72, 0x5a, 0x50, 0x5a, 0x72,
	0x5a, 0x62, 0x78, 0x5a, 0x39, 0x28, 0x39, 0x5a,
	0x7f, 0x85, 0x78, 0x50, 0x28, 0x00, 0x28, 0x50,
	0xa6, 0xa6, 0x7f, 0x5a, 0x39, 0x28, 0x39, 0x5a,
	0xcd, 0xab, 0x85, 0x62, 0x45, 0x39, 0x45, 0x62,
	0xd1, 0xab, 0x85, 0x62, 0x45, 0x39, 0x45, 0x62,
	0xcd, 0xa6, 0x7f, 0x5a, 0x39, 0x28, 0x39, 0x5a,
	0xd1, 0xab, 0x85, 0x62, 0x45, 0x39, 0x45, 0x62,
}

var perlinGolden = []uint8{
	0x7f, 0x7f, 0x7f, 0x7f, 0x7f, 0x7f, 0x7f, 0x7f,
	0x59, 0x60, 0x7f, 0x9e, 0xa5, 0x9c, 0x7c, 0x5e,
	0x3f, 0x4c, 0x7f, 0xb2, 0xbf, 0xad, 0x6f, 0x3e,
	0x59, 0x60, 0x7f, 0x9e, 0xa5, 0x95, 0x62, 0x47,
	0x7f, 0x7f, 0x7f, 0x7f, 0x7f, 0x75, 0x5f, 0x62,
	0x9c, 0x9a, 0x86, 0x6c, 0x62, 0x5b, 0x5a, 0x72,
	0x9f, 0xac, 0x9f, 0x79, 0x5f, 0x4f, 0x4f, 0x68,
	0x89, 0xa9, 0xb8, 0x9a, 0x75, 0x5a, 0x51, 0x61,

	0xa5, 0x9e, 0x81, 0x66, 0x62, 0x64, 0x61, 0x5b,
	0x78, 0x79, 0x7d, 0x83, 0x87, 0x80, 0x5f, 0x3e,
	0x44, 0x4f, 0x72, 0x93, 0x9c, 0x8c, 0x57, 0x2f,
	0x43, 0x4d, 0x69, 0x80, 0x83, 0x74, 0x50, 0x44,
	0x62, 0x66, 0x69, 0x66, 0x62, 0x59, 0x4e, 0x5e,
	0x7d, 0x7f, 0x70, 0x58, 0x4c, 0x45, 0x4b, 0x6d,
	0x7a, 0x88, 0x81, 0x60, 0x47, 0x3b, 0x4a, 0x71,
	0x60, 0x7f, 0x8e, 0x75, 0x55, 0x42, 0x53, 0x7c,

	0xbf, 0xb0, 0x7f, 0x5b, 0x5f, 0x6a, 0x5f, 0x47,
	0x8e, 0x8a, 0x7a, 0x73, 0x7c, 0x7d, 0x5c, 0x33,
	0x4f, 0x5b, 0x6f, 0x7d, 0x7f, 0x73, 0x4f, 0x38,
	0x43, 0x57, 0x71, 0x75, 0x69, 0x55, 0x43, 0x50,
	0x5f, 0x72, 0x7f, 0x72, 0x5f, 0x4a, 0x3f, 0x5a,
	0x73, 0x85, 0x8a, 0x76, 0x61, 0x4c, 0x42, 0x5a,
	0x5f, 0x72, 0x7f, 0x72, 0x5f, 0x4f, 0x4f, 0x68,
	0x3e, 0x53, 0x67, 0x62, 0x51, 0x49, 0x63, 0x8c,
}

var octaveUnitGolden = []uint8{
	0xae, 0xac, 0xab, 0xaa, 0xa9, 0x98, 0x87, 0x77,
	0x9c, 0xa0, 0xa4, 0xa8, 0xac, 0x9b, 0x8a, 0x79,
	0x8a, 0x94, 0x9d, 0xa6, 0xaf, 0x9e, 0x8d, 0x7c,
	0x79, 0x87, 0x95, 0xa4, 0xb2, 0xa1, 0x90, 0x7f,
	0x67, 0x7b, 0x8e, 0xa1, 0xb5, 0xa4, 0x93, 0x82,
	0x71, 0x80, 0x8e, 0x9d, 0xab, 0x9e, 0x91, 0x84,
	0x7b, 0x85, 0x8e, 0x98, 0xa1, 0x98, 0x8f, 0x86,
	0x85, 0x8a, 0x8e, 0x93, 0x97, 0x92, 0x8d, 0x88,

	0xa6, 0xa6, 0xa6, 0xa6, 0xa6, 0x9a, 0x8e, 0x82,
	0x9b, 0x9e, 0xa1, 0xa4, 0xa7, 0x9a, 0x8e, 0x82,
	0x91, 0x96, 0x9c, 0xa2, 0xa8, 0x9b, 0x8e, 0x81,
	0x86, 0x8e, 0x97, 0xa0, 0xa8, 0x9b, 0x8e, 0x81,
	0x7b, 0x86, 0x92, 0x9d, 0xa9, 0x9c, 0x8e, 0x81,
	0x7f, 0x88, 0x91, 0x9a, 0xa4, 0x98, 0x8d, 0x82,
	0x82, 0x89, 0x90, 0x98, 0x9f, 0x95, 0x8c, 0x82,
	0x86, 0x8b, 0x90, 0x95, 0x99, 0x92, 0x8a, 0x83,

	0x9f, 0xa0, 0xa1, 0xa2, 0xa3, 0x9c, 0x94, 0x8d,
	0x9b, 0x9c, 0x9e, 0xa0, 0xa2, 0x9a, 0x92, 0x8a,
	0x97, 0x99, 0x9b, 0x9e, 0xa0, 0x98, 0x8f, 0x87,
	0x93, 0x96, 0x99, 0x9c, 0x9e, 0x95, 0x8c, 0x83,
	0x8e, 0x92, 0x96, 0x99, 0x9d, 0x93, 0x8a, 0x80,
	0x8c, 0x90, 0x94, 0x98, 0x9d, 0x93, 0x89, 0x7f,
	0x89, 0x8e, 0x93, 0x97, 0x9c, 0x92, 0x88, 0x7f,
	0x87, 0x8c, 0x91, 0x97, 0x9c, 0x92, 0x88, 0x7e,
}

var octaveCosineGolden = []uint8{
	0xae, 0xad, 0xac, 0xaa, 0xa9, 0x9f, 0x87, 0x70,
	0xae, 0xad, 0xac, 0xaa, 0xa9, 0x9f, 0x87, 0x70,
	0xae, 0xad, 0xac, 0xaa, 0xa9, 0x9f, 0x87, 0x70,
	0xae, 0xad, 0xac, 0xaa, 0xa9, 0x9f, 0x87, 0x70,
	0xae, 0xad, 0xac, 0xaa, 0xa9, 0x9f, 0x87, 0x70,
	0xae, 0xad, 0xac, 0xaa, 0xa9, 0x9f, 0x87, 0x70,
	0xae, 0xad, 0xac, 0xaa, 0xa9, 0x9f, 0x87, 0x70,
	0xae, 0xad, 0xac, 0xaa, 0xa9, 0x9f, 0x87, 0x70,

	0xa3, 0xa5, 0xa8, 0xac, 0xac, 0xa2, 0x8b, 0x73,
	0xa3, 0xa5, 0xa8, 0xac, 0xac, 0xa2, 0x8b, 0x73,
	0xa3, 0xa5, 0xa8, 0xac, 0xac, 0xa2, 0x8b, 0x73,
	0xa3, 0xa5, 0xa8, 0xac, 0xac, 0xa2, 0x8b, 0x73,
	0xa3, 0xa5, 0xa8, 0xac, 0xac, 0xa2, 0x8b, 0x73,
	0xa3, 0xa5, 0xa8, 0xac, 0xac, 0xa2, 0x8b, 0x73,
	0xa3, 0xa5, 0xa8, 0xac, 0xac, 0xa2, 0x8b, 0x73,
	0xa3, 0xa5, 0xa8, 0xac, 0xac, 0xa2, 0x8b, 0x73,

	0x8b, 0x91, 0xa0, 0xae, 0xb3, 0xa8, 0x92, 0x7c,
	0x8b, 0x91, 0xa0, 0xae, 0xb3, 0xa8, 0x92, 0x7c,
	0x8b, 0x91, 0xa0, 0xae, 0xb3, 0xa8, 0x92, 0x7c,
	0x8b, 0x91, 0xa0, 0xae, 0xb3, 0xa8, 0x92, 0x7c,
	0x8b, 0x91, 0xa0, 0xae, 0xb3, 0xa8, 0x92, 0x7c,
	0x8b, 0x91, 0xa0, 0xae, 0xb3, 0xa8, 0x92, 0x7c,
	0x8b, 0x91, 0xa0, 0xae, 0xb3, 0xa8, 0x92, 0x7c,
	0x8b, 0x91, 0xa0, 0xae, 0xb3, 0xa8, 0x92, 0x7c,
}

var octavePerlinGolden = []uint8{
	0x7f, 0x7f, 0x7f, 0x7f, 0x7f, 0x7f, 0x7f, 0x7f,
	0x7c, 0x7c, 0x7c, 0x7d, 0x7d, 0x7e, 0x7e, 0x7e,
	0x79, 0x79, 0x79, 0x7a, 0x7b, 0x7c, 0x7d, 0x7e,
	0x76, 0x76, 0x76, 0x77, 0x79, 0x7b, 0x7c, 0x7d,
	0x73, 0x73, 0x73, 0x75, 0x77, 0x79, 0x7a, 0x7c,
	0x71, 0x71, 0x71, 0x73, 0x74, 0x76, 0x78, 0x7a,
	0x6f, 0x6f, 0x70, 0x71, 0x72, 0x74, 0x76, 0x77,
	0x6e, 0x6e, 0x6e, 0x6f, 0x70, 0x72, 0x73, 0x75,

	0x82, 0x82, 0x82, 0x81, 0x81, 0x80, 0x80, 0x80,
	0x7f, 0x7f, 0x7f, 0x7f, 0x7f, 0x7f, 0x7f, 0x7f,
	0x7c, 0x7c, 0x7c, 0x7c, 0x7d, 0x7e, 0x7e, 0x7f,
	0x78, 0x78, 0x78, 0x79, 0x7b, 0x7c, 0x7d, 0x7e,
	0x75, 0x75, 0x75, 0x76, 0x78, 0x7a, 0x7b, 0x7c,
	0x72, 0x72, 0x73, 0x74, 0x75, 0x77, 0x79, 0x7a,
	0x70, 0x70, 0x71, 0x72, 0x73, 0x75, 0x76, 0x78,
	0x6f, 0x6f, 0x6f, 0x70, 0x71, 0x72, 0x74, 0x75,

	0x85, 0x85, 0x85, 0x84, 0x83, 0x82, 0x81, 0x81,
	0x82, 0x82, 0x82, 0x82, 0x81, 0x81, 0x80, 0x80,
	0x7f, 0x7f, 0x7f, 0x7f, 0x7f, 0x7f, 0x7f, 0x7f,
	0x7b, 0x7b, 0x7b, 0x7c, 0x7c, 0x7d, 0x7e, 0x7e,
	0x77, 0x77, 0x78, 0x78, 0x7a, 0x7b, 0x7c, 0x7d,
	0x74, 0x74, 0x74, 0x75, 0x77, 0x78, 0x7a, 0x7b,
	0x71, 0x72, 0x72, 0x73, 0x74, 0x76, 0x77, 0x78,
	0x70, 0x70, 0x70, 0x71, 0x72, 0x73, 0x74, 0x75,
}

var unitLocGolden = []uint8{
	0x5a, 0x5a, 0x5a, 0x59,
	0x5a, 0x5b, 0x5c, 0x5d,
	0x5a, 0x5c, 0x5e, 0x61,
	0x59, 0x5d, 0x61, 0x64,
}
