package errutil

var (
	ErrConfigRead      = NewInternalError("config read error")
	ErrConfigDecode    = NewInternalError("config decode error")
	ErrOverrideRead    = NewInternalError("override state read error")
	ErrOverrideDecode  = NewInternalError("override state decode error")
	ErrOverrideWrite   = NewInternalError("override state write error")
	ErrChannelsRead    = NewInternalError("channel directory read error")
	ErrPlaylistRead    = NewInternalError("playlist read error")
	ErrRelayRead       = NewInternalError("relay config read error")
	ErrStatusWrite     = NewInternalError("status file write error")
	ErrJSONDecode      = NewInternalError("json decode error")
	ErrJSONEncode      = NewInternalError("json encode error")
	ErrTimeParse       = NewInternalError("time parse error")
	ErrDatabaseOpen    = NewInternalError("database open error")
	ErrDatabaseQuery   = NewInternalError("database query error")
	ErrDatabaseScan    = NewInternalError("database scan error")
	ErrDatabasePrepare = NewInternalError("database prepare error")
	ErrScheduler       = NewInternalError("scheduler error")

	// 利用者の入力ミス系（CLI では usage error 扱い）
	ErrInvalidDay     = NewInternalError("invalid day")
	ErrInvalidTime    = NewInternalError("invalid time of day")
	ErrInvalidBlock   = NewInternalError("invalid block")
	ErrUnknownShow    = NewInternalError("unknown show")
	ErrUnknownChannel = NewInternalError("unknown channel")

	// 分類できない系
	ErrInternal = NewInternalError("internal something error")
)
