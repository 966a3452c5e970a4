package catalog

// Builtin returns the built-in bright-star catalog with constellation
// figures. Coordinates are J2000 epoch, data sourced from the Hipparcos
// catalog and IAU star names. Ordered roughly by magnitude, brightest first.
func Builtin() *Memory {
	return NewMemory("builtin", builtinStars, builtinConstellations)
}

var builtinStars = []Star{
	// Magnitude < 0.5 (exceptionally bright)
	{32349, "Sirius", 101.287, -16.716, -1.46, "A1V"},
	{30438, "Canopus", 95.988, -52.696, -0.74, "F0II"},
	{69673, "Arcturus", 213.915, 19.182, -0.05, "K1.5III"},
	{91262, "Vega", 279.235, 38.784, 0.03, "A0V"},
	{24608, "Capella", 79.172, 45.998, 0.08, "G8III"},
	{24436, "Rigel", 78.634, -8.202, 0.13, "B8Ia"},
	{37279, "Procyon", 114.826, 5.225, 0.34, "F5IV"},
	{7588, "Achernar", 24.429, -57.237, 0.46, "B6V"},
	{27989, "Betelgeuse", 88.793, 7.407, 0.50, "M1Ia"},

	// Magnitude 0.5-1.0
	{68702, "Hadar", 210.956, -60.373, 0.61, "B1III"},
	{97649, "Altair", 297.696, 8.868, 0.76, "A7V"},
	{60718, "Acrux", 186.650, -63.099, 0.76, "B0.5IV"},
	{21421, "Aldebaran", 68.980, 16.509, 0.85, "K5III"},
	{80763, "Antares", 247.352, -26.432, 0.96, "M1.5Ib"},
	{65474, "Spica", 201.298, -11.161, 0.97, "B1III"},

	// Magnitude 1.0-1.5
	{37826, "Pollux", 116.329, 28.026, 1.14, "K0III"},
	{113368, "Fomalhaut", 344.413, -29.622, 1.16, "A3V"},
	{102098, "Deneb", 310.358, 45.280, 1.25, "A2Ia"},
	{62434, "Mimosa", 191.930, -59.689, 1.25, "B0.5III"},
	{49669, "Regulus", 152.093, 11.967, 1.35, "B7V"},

	// Magnitude 1.5-2.0
	{33579, "Adhara", 104.656, -28.972, 1.50, "B2II"},
	{36850, "Castor", 113.650, 31.889, 1.58, "A1V"},
	{61084, "Gacrux", 187.791, -57.113, 1.63, "M3.5III"},
	{85927, "Shaula", 263.402, -37.104, 1.63, "B2IV"},
	{25336, "Bellatrix", 81.283, 6.350, 1.64, "B2III"},
	{25428, "Elnath", 81.573, 28.608, 1.65, "B7III"},
	{45238, "Miaplacidus", 138.300, -69.717, 1.68, "A1III"},
	{26311, "Alnilam", 84.053, -1.202, 1.69, "B0Ia"},
	{109268, "Alnair", 332.058, -46.961, 1.74, "B6V"},
	{26727, "Alnitak", 85.190, -1.943, 1.77, "O9.7Ib"},
	{62956, "Alioth", 193.507, 55.960, 1.77, "A1III"},
	{54061, "Dubhe", 165.932, 61.751, 1.79, "K0III"},
	{15863, "Mirfak", 51.081, 49.861, 1.79, "F5Ib"},
	{34444, "Wezen", 107.098, -26.393, 1.84, "F8Ia"},
	{90185, "Kaus Australis", 276.043, -34.384, 1.85, "B9.5III"},
	{41037, "Avior", 125.629, -59.509, 1.86, "K3III"},
	{67301, "Alkaid", 206.885, 49.313, 1.86, "B3V"},
	{86228, "Sargas", 264.330, -42.998, 1.87, "F1II"},
	{28360, "Menkalinan", 89.882, 44.948, 1.90, "A1IV"},
	{82273, "Atria", 252.166, -69.028, 1.92, "K2Ib"},
	{31681, "Alhena", 99.428, 16.399, 1.93, "A1.5IV"},
	{100751, "Peacock", 306.412, -56.735, 1.94, "B2IV"},
	{42913, "Alsephina", 131.176, -54.709, 1.96, "A1V"},
	{30324, "Mirzam", 95.675, -17.956, 1.98, "B1II"},
	{46390, "Alphard", 141.897, -8.659, 2.00, "K3II"},

	// Magnitude 2.0-2.5
	{9884, "Hamal", 31.793, 23.463, 2.00, "K1III"},
	{3419, "Diphda", 10.897, -17.987, 2.02, "K0III"},
	{92855, "Nunki", 283.816, -26.297, 2.02, "B2.5V"},
	{11767, "Polaris", 37.954, 89.264, 2.02, "F7Ib"},
	{65378, "Mizar", 200.981, 54.925, 2.04, "A2V"},
	{5447, "Mirach", 17.433, 35.621, 2.05, "M0III"},
	{677, "Alpheratz", 2.097, 29.091, 2.06, "B8IV"},
	{68933, "Menkent", 211.671, -36.370, 2.06, "K0III"},
	{72607, "Kochab", 222.676, 74.156, 2.08, "K4III"},
	{86032, "Rasalhague", 263.734, 12.560, 2.08, "A5III"},
	{50583, "Algieba", 146.463, 19.842, 2.08, "K1III"},
	{27366, "Saiph", 86.939, -9.670, 2.09, "B0.5Ia"},
	{14576, "Algol", 47.042, 40.957, 2.12, "B8V"},
	{57632, "Denebola", 177.265, 14.572, 2.13, "A3V"},
	{61932, "Muhlifain", 190.379, -48.960, 2.17, "A1IV"},
	{44816, "Suhail", 136.999, -43.433, 2.21, "K4Ib"},
	{25930, "Mintaka", 83.002, -0.299, 2.23, "O9.5II"},
	{100453, "Sadr", 305.557, 40.257, 2.23, "F8Ib"},
	{87833, "Eltanin", 269.152, 51.489, 2.23, "K5III"},
	{3179, "Schedar", 10.127, 56.537, 2.23, "K0II"},
	{76267, "Alphecca", 233.672, 26.715, 2.23, "A0V"},
	{39429, "Naos", 120.896, -40.003, 2.25, "O4I"},
	{45556, "Aspidiske", 139.273, -59.275, 2.25, "A9Ib"},
	{746, "Caph", 2.295, 59.150, 2.27, "F2III"},
	{82396, "Larawag", 254.655, -34.293, 2.29, "K2.5III"},
	{78401, "Dschubba", 240.083, -22.622, 2.32, "B0.3IV"},
	{53910, "Merak", 165.460, 56.382, 2.37, "A1V"},
	{72105, "Izar", 221.247, 27.074, 2.37, "A0II"},
	{107315, "Enif", 326.046, 9.875, 2.39, "K2Ib"},
	{2081, "Ankaa", 6.571, -42.306, 2.38, "K0III"},
	{86670, "Girtab", 265.622, -39.030, 2.41, "B1.5III"},
	{113881, "Scheat", 345.944, 28.083, 2.42, "M2.5II"},
	{84012, "Sabik", 257.595, -15.725, 2.43, "A2V"},
	{58001, "Phecda", 178.458, 53.695, 2.44, "A0V"},
	{35904, "Aludra", 111.024, -29.303, 2.45, "B5Ia"},
	{4427, "Navi", 14.177, 60.717, 2.47, "B0.5IV"},
	{102488, "Aljanah", 311.553, 33.970, 2.48, "K0III"},
	{113963, "Markab", 346.190, 15.205, 2.49, "A0IV"},
	{105199, "Alderamin", 319.645, 62.586, 2.51, "A7IV"},

	// Magnitude 2.5-3.1
	{54872, "Zosma", 168.527, 20.524, 2.56, "A4V"},
	{25985, "Arneb", 83.183, -17.822, 2.58, "F0Ib"},
	{59803, "Gienah", 183.952, -17.542, 2.59, "B8III"},
	{74785, "Zubeneschamali", 229.252, -9.383, 2.61, "B8V"},
	{78820, "Acrab", 241.359, -19.805, 2.62, "B1V"},
	{61359, "Kraz", 188.597, -23.397, 2.65, "G5II"},
	{77070, "Unukalhai", 236.067, 6.426, 2.65, "K2III"},
	{8903, "Sheratan", 28.660, 20.808, 2.64, "A5V"},
	{26634, "Phact", 84.912, -34.074, 2.64, "B7IV"},
	{30343, "Tejat", 95.740, 22.513, 2.88, "M3III"},
	{72622, "Zubenelgenubi", 222.720, -16.042, 2.75, "A3IV"},
	{61941, "Porrima", 190.415, -1.449, 2.74, "F0V"},
	{23875, "Cursa", 76.963, -5.086, 2.79, "A3III"},
	{85670, "Rastaban", 262.608, 52.301, 2.79, "G2II"},
	{25606, "Nihal", 82.061, -20.759, 2.84, "G5II"},
	{17702, "Alcyone", 56.871, 24.105, 2.87, "B7III"},
	{106278, "Sadalsuud", 322.890, -5.571, 2.91, "G0Ib"},
	{60965, "Algorab", 187.466, -16.515, 2.95, "A0IV"},
	{109074, "Sadalmelik", 331.446, -0.320, 2.96, "G2Ib"},
	{36188, "Gomeisa", 111.788, 8.289, 2.90, "B8V"},
	{6686, "Ruchbah", 21.454, 60.235, 2.68, "A5IV"},
	{59747, "Imai", 183.786, -58.749, 2.79, "B2IV"},
	{50335, "Adhafera", 154.173, 23.417, 3.43, "F0III"},
	{48455, "Rasalas", 146.463, 26.007, 3.88, "K2III"},
	{55705, "Chertan", 168.560, 15.430, 3.33, "A2V"},
	{63608, "Vindemiatrix", 195.544, 10.959, 2.83, "G8III"},
	{63125, "Cor Caroli", 194.007, 38.318, 2.81, "A0V"},
	{68756, "Thuban", 211.097, 64.376, 3.65, "A0III"},
	{97278, "Tarazed", 296.565, 10.613, 2.72, "K3II"},
	{95947, "Albireo", 292.680, 27.960, 3.18, "K3II"},
	{8886, "Segin", 28.599, 63.670, 3.37, "B3III"},
	{59774, "Megrez", 183.857, 57.033, 3.31, "A3V"},
	{65477, "Alcor", 201.306, 54.988, 3.99, "A5V"},
}

var builtinConstellations = []Constellation{
	{
		Name: "Orion",
		Abbr: "Ori",
		Lines: []Line{
			{"Betelgeuse", "Bellatrix"},
			{"Bellatrix", "Mintaka"},
			{"Mintaka", "Alnilam"},
			{"Alnilam", "Alnitak"},
			{"Alnitak", "Betelgeuse"},
			{"Mintaka", "Rigel"},
			{"Alnitak", "Saiph"},
			{"Saiph", "Rigel"},
		},
	},
	{
		Name: "Ursa Major",
		Abbr: "UMa",
		Lines: []Line{
			{"Dubhe", "Merak"},
			{"Merak", "Phecda"},
			{"Phecda", "Megrez"},
			{"Megrez", "Dubhe"},
			{"Megrez", "Alioth"},
			{"Alioth", "Mizar"},
			{"Mizar", "Alkaid"},
		},
	},
	{
		Name: "Cassiopeia",
		Abbr: "Cas",
		Lines: []Line{
			{"Caph", "Schedar"},
			{"Schedar", "Navi"},
			{"Navi", "Ruchbah"},
			{"Ruchbah", "Segin"},
		},
	},
	{
		Name: "Crux",
		Abbr: "Cru",
		Lines: []Line{
			{"Acrux", "Gacrux"},
			{"Mimosa", "Imai"},
		},
	},
	{
		Name: "Cygnus",
		Abbr: "Cyg",
		Lines: []Line{
			{"Deneb", "Sadr"},
			{"Sadr", "Albireo"},
			{"Sadr", "Aljanah"},
		},
	},
	{
		Name: "Scorpius",
		Abbr: "Sco",
		Lines: []Line{
			{"Acrab", "Dschubba"},
			{"Dschubba", "Antares"},
			{"Antares", "Larawag"},
			{"Larawag", "Sargas"},
			{"Sargas", "Shaula"},
		},
	},
	{
		Name: "Leo",
		Abbr: "Leo",
		Lines: []Line{
			{"Regulus", "Algieba"},
			{"Algieba", "Adhafera"},
			{"Adhafera", "Rasalas"},
			{"Regulus", "Chertan"},
			{"Chertan", "Denebola"},
			{"Denebola", "Zosma"},
			{"Zosma", "Algieba"},
		},
	},
}
