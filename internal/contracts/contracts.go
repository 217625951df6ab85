package contracts

// Mode is the execution strategy a spec declares in its frontmatter.
type Mode string

const (
	// ModeSequential runs tasks one at a time in a single session.
	ModeSequential Mode = "sequential"
	// ModeDelegated dispatches tasks to specialised sub-agents.
	ModeDelegated Mode = "delegated"
	// ModeTeam spawns collaborating instances.
	ModeTeam Mode = "team"
)

// Contract describes the sections a spec of a given mode must contain.
type Contract struct {
	Mode             Mode
	RequiredSections []string
}

var baseSections = []string{
	"## Task Description",
	"## Objective",
	"## Relevant Files",
	"## Step by Step Tasks",
	"## Documentation Requirements",
	"## Acceptance Criteria",
	"## Validation Commands",
}

var delegatedSections = []string{
	"## Team Members",
	"## Review Policy",
}

// Team mode derives assignees from each task's Assigned To and Agent Type
// fields, so Team Members is optional there.
var teamSections = []string{
	"## Team Configuration",
	"## Review Policy",
}

var specContracts = map[Mode]Contract{
	ModeSequential: {Mode: ModeSequential, RequiredSections: join(baseSections)},
	ModeDelegated:  {Mode: ModeDelegated, RequiredSections: join(baseSections, delegatedSections)},
	ModeTeam:       {Mode: ModeTeam, RequiredSections: join(baseSections, teamSections)},
}

// Modes lists the known modes in documentation order.
func Modes() []Mode {
	return []Mode{ModeSequential, ModeDelegated, ModeTeam}
}

// Known reports whether m is one of the declared modes.
func (m Mode) Known() bool {
	_, ok := specContracts[m]
	return ok
}

// ContractForMode returns the contract for mode. Unrecognised modes get the
// sequential contract.
func ContractForMode(mode string) Contract {
	contract, ok := specContracts[Mode(mode)]
	if !ok {
		contract = specContracts[ModeSequential]
	}
	return Contract{Mode: contract.Mode, RequiredSections: join(contract.RequiredSections)}
}

// RequiredSections returns the ordered section headers required for mode.
func RequiredSections(mode string) []string {
	return ContractForMode(mode).RequiredSections
}

func join(lists ...[]string) []string {
	var out []string
	for _, list := range lists {
		out = append(out, list...)
	}
	return out
}
