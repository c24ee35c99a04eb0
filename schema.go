package statdb

import (
	"fmt"
)

// Module is one analysis dimension. Each enabled module gets its own set of
// metric tables. The set is closed; new modules require a schema change.
type Module uint8

const (
	Visitors Module = iota
	Requests
	RequestsStatic
	NotFound
	Hosts
	OS
	Browsers
	VisitTimes
	VirtualHosts
	Referrers
	ReferringSites
	Keyphrases
	StatusCodes
	RemoteUser

	moduleCount
)

var moduleNames = [moduleCount]string{
	Visitors:       "visitors",
	Requests:       "requests",
	RequestsStatic: "static_requests",
	NotFound:       "not_found",
	Hosts:          "hosts",
	OS:             "os",
	Browsers:       "browsers",
	VisitTimes:     "visit_time",
	VirtualHosts:   "vhosts",
	Referrers:      "referrers",
	ReferringSites: "referring_sites",
	Keyphrases:     "keyphrases",
	StatusCodes:    "status_codes",
	RemoteUser:     "remote_user",
}

func (m Module) String() string {
	if m >= moduleCount {
		return fmt.Sprintf("Module(%d)", uint8(m))
	}
	return moduleNames[m]
}

// ParseModule resolves a config-file module name.
func ParseModule(name string) (Module, bool) {
	for m, n := range moduleNames {
		if n == name {
			return Module(m), true
		}
	}
	return 0, false
}

// AllModules returns every known module, in index order.
func AllModules() []Module {
	mods := make([]Module, moduleCount)
	for i := range mods {
		mods[i] = Module(i)
	}
	return mods
}

// Metric is one statistical fact tracked per module, each backed by its own
// table. Key and value types are fixed per metric and never mixed.
type Metric uint8

const (
	MtrcKeymap Metric = iota
	MtrcRootmap
	MtrcDatamap
	MtrcUniqmap
	MtrcRoot
	MtrcHits
	MtrcVisitors
	MtrcBW
	MtrcCumTS
	MtrcMaxTS
	MtrcMethods
	MtrcProtocols
	MtrcAgents
	MtrcMetadata

	mtrcCount
)

// Global bucket names. Part of the on-disk contract.
const (
	dbAgentKeys  = "db_agent_keys"
	dbAgentVals  = "db_agent_vals"
	dbGenStats   = "db_gen_stats"
	dbHostnames  = "db_hostnames"
	dbUniqueKeys = "db_unique_keys"
)

// Metric bucket base names, indexed by Metric. Part of the on-disk contract.
var mtrcBucketNames = [mtrcCount]string{
	MtrcKeymap:    "db_keymap",
	MtrcRootmap:   "db_rootmap",
	MtrcDatamap:   "db_datamap",
	MtrcUniqmap:   "db_uniqmap",
	MtrcRoot:      "db_root",
	MtrcHits:      "db_hits",
	MtrcVisitors:  "db_visitors",
	MtrcBW:        "db_bw",
	MtrcCumTS:     "db_cumts",
	MtrcMaxTS:     "db_maxts",
	MtrcMethods:   "db_methods",
	MtrcProtocols: "db_protocols",
	MtrcAgents:    "db_agents",
	MtrcMetadata:  "db_metadata",
}

func (m Metric) String() string {
	if m >= mtrcCount {
		return fmt.Sprintf("Metric(%d)", uint8(m))
	}
	return mtrcBucketNames[m][len("db_"):]
}

type bucketName []byte

func makeBucketName(name string) bucketName {
	if name == "" {
		panic("empty bucket name")
	}
	return bucketName(name)
}

// makeMetricBucketName derives the per-module bucket name so two modules
// never collide: <base>-m<module-index>.
func makeMetricBucketName(mtrc Metric, module Module) bucketName {
	return makeBucketName(fmt.Sprintf("%s-m%d", mtrcBucketNames[mtrc], module))
}

func (bn bucketName) String() string {
	return string(bn)
}

func (bn bucketName) Raw() []byte {
	return []byte(bn)
}

// table is a handle for one named bucket. Handles are created once at Open
// and owned by the DB; accessors borrow them per call.
type table struct {
	buck bucketName
}

func (tbl *table) Name() string {
	return tbl.buck.String()
}
