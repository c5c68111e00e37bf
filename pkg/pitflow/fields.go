package pitflow

// FieldInfo describes a parameter or output for reporting layers:
// a human-readable label and a unit string. The core exposes this
// metadata but never formats tables itself.
type FieldInfo struct {
	Label string
	Unit  string
}

// FieldInfos maps canonical field names to their reporting metadata.
// Names follow the snake_case convention of the hydrogeological
// literature the model derives from.
var FieldInfos = map[string]FieldInfo{
	// Inputs
	"drawdown_stab": {"Stabilized drawdown at pit wall", "m"},
	"drawdown_edge": {"Residual drawdown at influence boundary", "m"},
	"radius_eff":    {"Effective pit radius", "m"},
	"recharge":      {"Aquifer recharge rate", "m/s"},
	"cond_h":        {"Horizontal hydraulic conductivity", "m/s"},
	"anisotropy":    {"Conductivity anisotropy ratio", "-"},
	"depth_pitlake": {"Pit lake depth", "m"},
	"area":          {"Pit plan area", "m²"},
	"precipitation": {"Annual precipitation", "mm/yr"},
	"infil_coef":    {"Infiltration coefficient", "-"},

	// Outputs
	"radius_infl":           {"Radius of influence (from pit center)", "m"},
	"radius_infl_from_edge": {"Radius of influence (from pit wall)", "m"},
	"radius_at_threshold":   {"Radius at drawdown threshold", "m"},
	"inflow_zone1":          {"Horizontal inflow through pit walls", "m³/s"},
	"inflow_zone2":          {"Vertical inflow through pit floor", "m³/s"},
	"inflow_total":          {"Total groundwater inflow", "m³/s"},
	"inflow_precipitation":  {"Direct precipitation inflow", "m³/s"},
	"inflow_meltwater":      {"Snowmelt inflow", "m³/s"},
}
