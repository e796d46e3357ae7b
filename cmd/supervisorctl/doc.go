// Command supervisorctl controls supervisord instances over XML-RPC.
//
// It reads servers from a TOML configuration file (see `supervisorctl
// config init`) and exposes the common supervisorctl actions plus a raw
// `call` passthrough for any remote method:
//
//	supervisorctl status
//	supervisorctl -s prod restart web
//	supervisorctl call getProcessInfo web
//	supervisorctl watch --follow-config
package main
