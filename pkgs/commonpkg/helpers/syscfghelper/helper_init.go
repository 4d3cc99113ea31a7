package syscfghelper

////////////////////////////////////////////////////////////////////////////////

const (
	DEFAULT_CONF_FILE = "./conf/xguild.yaml"
)
