// Package builder defines shared constants used by graph builders.
package builder

const (
	// MethodCycle is the canonical name for the Cycle constructor.
	MethodCycle = "Cycle"
	// MethodPath is the canonical name for the Path constructor.
	MethodPath = "Path"
	// MethodStar is the canonical name for the Star constructor.
	MethodStar = "Star"
	// MethodWheel is the canonical name for the Wheel constructor.
	MethodWheel = "Wheel"
	// MethodComplete is the canonical name for the Complete constructor.
	MethodComplete = "Complete"
	// MethodRandomSparse is the canonical name for the RandomSparse constructor.
	MethodRandomSparse = "RandomSparse"
	// MethodRandomSocial is the canonical name for the RandomSocial constructor.
	MethodRandomSocial = "RandomSocial"
)

const (
	// MinCycleNodes is the smallest ring without loops or parallel edges.
	MinCycleNodes = 3
	// MinPathNodes is the smallest path that has an edge.
	MinPathNodes = 2
	// MinStarNodes is a center plus one leaf.
	MinStarNodes = 2
	// MinWheelNodes is a center plus a triangle rim.
	MinWheelNodes = 4
	// MinCompleteNodes allows the trivial K_1.
	MinCompleteNodes = 1
	// MinRandomNodes allows a single isolated user.
	MinRandomNodes = 1
)

// DefaultNamePool is the display-name pool for generated users.
var DefaultNamePool = []string{
	"Ahmet", "Mehmet", "Ayşe", "Fatma", "Ali", "Veli", "Zeynep", "Elif",
	"Mustafa", "Hüseyin", "Emine", "Hatice", "Can", "Cem", "Deniz", "Ege",
	"Selin", "Ömer", "Yusuf", "İbrahim", "Esra", "Merve", "Burak", "Kemal",
	"Leyla", "Murat", "Serkan", "Tuğba", "Gökhan", "Emre", "Berna", "Canan",
	"Derya", "Ebru", "Ferhat", "Gizem", "Hakan", "İpek", "Jale", "Kerem",
	"Lale", "Melisa", "Nalan", "Onur", "Pelin", "Rıza", "Seda", "Taner",
	"Umut", "Volkan", "Yasemin", "Zafer", "Ayla", "Bülent", "Ceren", "Dilek",
	"Erdem", "Funda", "Gülay", "Hande", "İrem", "Kaan", "Leman", "Metin",
	"Nilüfer", "Okan", "Perihan", "Ramazan", "Sevgi", "Tolga", "Ufuk", "Vildan",
	"Yakup", "Zühal", "Adem", "Beste", "Dilara", "Eren", "Fulya", "Gonca",
	"Halil", "İlknur", "Kadir", "Mete", "Neslihan", "Orhan", "Pınar", "Recep",
	"Sibel", "Tayfun", "Ülkü", "Vedat", "Yıldız", "Zeki",
}
