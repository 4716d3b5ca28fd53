package competitor

// Profile is one entry of the static airline identity table
type Profile struct {
	Name        string
	Hub         string
	Reputation  float64
	DailyIncome float64
	FleetSize   int
	Color       string
}

// Profiles is the static table of the 49 rival carriers present in every
// game. Hubs reference the static airport table.
var Profiles = []Profile{
	{"Atlantic Crown", "JFK", 78, 4_200_000, 410, "#1f3a93"},
	{"Pacific Meridian", "LAX", 74, 3_900_000, 380, "#0077b6"},
	{"Windy City Express", "ORD", 70, 3_400_000, 350, "#c0392b"},
	{"Peachtree Air", "ATL", 81, 4_600_000, 460, "#b03a2e"},
	{"Biscayne Airways", "MIA", 63, 1_800_000, 190, "#16a085"},
	{"Maple Leaf Connect", "YYZ", 72, 2_300_000, 240, "#d35400"},
	{"Verde Brasil Linhas", "GRU", 68, 2_100_000, 230, "#27ae60"},
	{"Pampas Austral", "EZE", 61, 1_200_000, 130, "#2980b9"},
	{"Azteca Skyways", "MEX", 64, 1_600_000, 170, "#8e44ad"},
	{"Albion Imperial", "LHR", 83, 5_100_000, 490, "#2c3e50"},
	{"Lutetia Tricolore", "CDG", 80, 4_800_000, 450, "#34495e"},
	{"Rhein Hansa", "FRA", 82, 4_900_000, 470, "#f39c12"},
	{"Orange Polder", "AMS", 76, 3_200_000, 310, "#e67e22"},
	{"Iberica Sol", "MAD", 71, 2_700_000, 280, "#c0392b"},
	{"Capitolina Wings", "FCO", 66, 2_000_000, 210, "#27ae60"},
	{"Helvetic Summit", "ZRH", 77, 2_500_000, 180, "#e74c3c"},
	{"Bosphorus Global", "IST", 79, 4_400_000, 430, "#c0392b"},
	{"Arabian Falcon", "DXB", 84, 5_300_000, 380, "#b8860b"},
	{"Pearl Qatari", "DOH", 82, 4_100_000, 290, "#7b1fa2"},
	{"Tafelberg Air", "JNB", 62, 1_300_000, 140, "#00695c"},
	{"Pharaoh Nile", "CAI", 58, 900_000, 100, "#bf360c"},
	{"Naija Star", "LOS", 54, 700_000, 80, "#1b5e20"},
	{"Savanna Jet", "NBO", 57, 800_000, 90, "#e65100"},
	{"Maharaja Express", "DEL", 69, 2_900_000, 300, "#ef6c00"},
	{"Gateway of India Air", "BOM", 65, 2_200_000, 240, "#4527a0"},
	{"Merlion Pacific", "SIN", 85, 5_000_000, 360, "#00838f"},
	{"Victoria Harbour Air", "HKG", 78, 3_800_000, 330, "#ad1457"},
	{"Sakura Nippon", "NRT", 81, 4_300_000, 400, "#d81b60"},
	{"Han River Air", "ICN", 77, 3_500_000, 320, "#1565c0"},
	{"Dragon Imperial", "PEK", 80, 4_700_000, 480, "#b71c1c"},
	{"Southern Cross Air", "SYD", 75, 3_000_000, 290, "#0d47a1"},
	{"Kiwi Horizon", "AKL", 67, 1_400_000, 120, "#263238"},
	{"Liberty Regional", "JFK", 52, 500_000, 60, "#455a64"},
	{"Sunset Shuttle", "LAX", 50, 450_000, 55, "#6d4c41"},
	{"Gulf Stream Air", "MIA", 55, 650_000, 75, "#00acc1"},
	{"Northern Lights Air", "YYZ", 59, 850_000, 95, "#5e35b1"},
	{"Copacabana Linhas", "GRU", 53, 550_000, 65, "#43a047"},
	{"Celtic Breeze", "LHR", 60, 950_000, 105, "#2e7d32"},
	{"Cote d'Azur Jet", "CDG", 56, 720_000, 85, "#3949ab"},
	{"Bavaria Regional", "FRA", 61, 1_000_000, 115, "#f4511e"},
	{"Tulip Charter", "AMS", 51, 480_000, 58, "#fb8c00"},
	{"Flamenco Airlines", "MAD", 54, 620_000, 72, "#8d6e63"},
	{"Anatolia Wings", "IST", 58, 780_000, 92, "#757575"},
	{"Oasis Desert Air", "DXB", 63, 1_100_000, 125, "#fdd835"},
	{"Monsoon Air", "DEL", 56, 690_000, 82, "#7cb342"},
	{"Orchid Island Air", "SIN", 62, 1_050_000, 110, "#26a69a"},
	{"Rising Sun Commuter", "NRT", 57, 740_000, 88, "#ec407a"},
	{"Ginseng Air", "ICN", 55, 660_000, 78, "#66bb6a"},
	{"Outback Hopper", "SYD", 53, 580_000, 68, "#ffa726"},
}
