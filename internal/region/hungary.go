package region

import (
	"slices"

	"github.com/android-4dsoft/yettel/internal/domain"
)

// Budapest is the capital district. It borders Pest only and has its own
// product, so it is excluded from regional passes.
const Budapest domain.RegionID = "BP"

var hungaryEdges = []Edge{
	{"11", "12"}, {"11", "15"}, {"11", "16"}, {"11", "20"}, {"11", "23"}, {"11", "26"},
	{"12", "24"}, {"12", "26"},
	{"13", "15"}, {"13", "18"}, {"13", "20"},
	{"14", "18"}, {"14", "19"}, {"14", "20"}, {"14", "22"}, {"14", "25"},
	{"15", "20"},
	{"16", "21"}, {"16", "23"}, {"16", "24"}, {"16", "26"}, {"16", "28"},
	{"17", "21"}, {"17", "27"}, {"17", "28"},
	{"18", "20"}, {"18", "25"},
	{"19", "20"}, {"19", "22"}, {"19", "23"},
	{"20", "23"},
	{"21", "23"}, {"21", "28"},
	{"22", "23"},
	{"24", "26"}, {"24", "28"}, {"24", "29"},
	{"27", "28"}, {"27", "29"},
	{"28", "29"},
	{Budapest, "23"},
}

// hungaryNames maps every region of the fixed data set to its display name.
var hungaryNames = map[domain.RegionID]string{
	Budapest: "Budapest",
	"11":     "Bács-Kiskun",
	"12":     "Baranya",
	"13":     "Békés",
	"14":     "Borsod-Abaúj-Zemplén",
	"15":     "Csongrád",
	"16":     "Fejér",
	"17":     "Győr-Moson-Sopron",
	"18":     "Hajdú-Bihar",
	"19":     "Heves",
	"20":     "Jász-Nagykun-Szolnok",
	"21":     "Komárom-Esztergom",
	"22":     "Nógrád",
	"23":     "Pest",
	"24":     "Somogy",
	"25":     "Szabolcs-Szatmár-Bereg",
	"26":     "Tolna",
	"27":     "Vas",
	"28":     "Veszprém",
	"29":     "Zala",
}

var hungary = NewGraph(Budapest, hungaryEdges)

// Hungary returns the shared graph of the 19 counties and the capital.
func Hungary() *Graph { return hungary }

// HungaryRegions returns the fixed 20-region data set in code order, capital
// first. It is the fallback reference list when a catalog omits names.
func HungaryRegions() []domain.Region {
	out := []domain.Region{{ID: Budapest, DisplayName: hungaryNames[Budapest]}}
	ids := hungary.Regions()
	slices.Sort(ids)
	for _, id := range ids {
		if id == Budapest {
			continue
		}
		out = append(out, domain.Region{ID: id, DisplayName: hungaryNames[id]})
	}
	return out
}
