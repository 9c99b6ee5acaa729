package topics

const (
	bashCompletionFunc = `
__internal_chunk_sizes() {
    out=(1KB 4KB 64KB 1MB)
    COMPREPLY=( $( compgen -W "${out[*]}" -- "$cur" ) )
}

__internal_output_dir() {
    # first argument is the folder code, the second one a local directory
    if [ ${#nouns[@]} -eq 1 ]; then
        _filedir -d
    fi
}

__gofiledl_custom_func() {
    case ${last_command} in
		gofiledl)
			__internal_output_dir
            return
            ;;
        *)
            ;;
    esac
}
`
)
