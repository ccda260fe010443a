package registry

// Profile categories.
const (
	CategoryOffice    = "Oficina"
	CategoryTechnical = "Técnicos"
)

// Default returns the built-in profile table. The requirement lists and
// thresholds are hand-tuned recruiting data, compiled in on purpose: an
// unknown id must fail loudly instead of falling back to a default profile.
func Default() *Registry {
	return New(defaultProfiles)
}

var defaultProfiles = []JobProfile{
	{
		ID:                 "administracion_finanzas",
		Title:              "Administración y Finanzas",
		Category:           CategoryOffice,
		RequiredSkills:     []string{"administración", "finanzas", "contabilidad", "excel avanzado", "gestión financiera"},
		PreferredSkills:    []string{"sap", "erp", "presupuestos", "análisis financiero", "planeación estratégica"},
		RequiredLanguages:  []string{"español"},
		PreferredLanguages: []string{"inglés"},
		MinExperienceYears: 2,
		MinScore:           70,
	},
	{
		ID:                 "control_proyectos",
		Title:              "Control de proyectos",
		Category:           CategoryOffice,
		RequiredSkills:     []string{"gestión de proyectos", "ms project", "excel avanzado", "planificación", "control de costos"},
		PreferredSkills:    []string{"pmp", "metodologías ágiles", "análisis de riesgos", "kpis", "reporting"},
		RequiredLanguages:  []string{"español"},
		PreferredLanguages: []string{"inglés"},
		MinExperienceYears: 2,
		MinScore:           70,
	},
	{
		ID:                 "gerente_administracion",
		Title:              "Gerente de Administración",
		Category:           CategoryOffice,
		RequiredSkills:     []string{"administración", "liderazgo", "gestión financiera", "planificación estratégica", "toma de decisiones"},
		PreferredSkills:    []string{"erp", "gestión de equipos", "negociación", "presupuestos", "optimización de procesos"},
		RequiredLanguages:  []string{"español", "inglés"},
		MinExperienceYears: 2,
		MinScore:           75,
	},
	{
		ID:                 "auxiliar_contable",
		Title:              "Auxiliar contable",
		Category:           CategoryOffice,
		RequiredSkills:     []string{"contabilidad", "excel", "cálculos contables", "registro de operaciones", "archivo"},
		PreferredSkills:    []string{"software contable", "conciliaciones bancarias", "facturación", "impuestos", "nómina"},
		RequiredLanguages:  []string{"español"},
		PreferredLanguages: []string{"inglés"},
		MinExperienceYears: 1,
		MinScore:           65,
	},
	{
		ID:                 "flotilla_vehicular",
		Title:              "Flotilla vehicular",
		Category:           CategoryOffice,
		RequiredSkills:     []string{"gestión de flotillas", "logística", "mantenimiento vehicular", "excel", "control de gastos"},
		PreferredSkills:    []string{"gps tracking", "gestión de combustible", "seguros vehiculares", "programación de mantenimiento", "reportes de rendimiento"},
		RequiredLanguages:  []string{"español"},
		PreferredLanguages: []string{"inglés"},
		MinExperienceYears: 2,
		MinScore:           70,
	},
	{
		ID:                 "almacen_compras",
		Title:              "Almacén y compras",
		Category:           CategoryOffice,
		RequiredSkills:     []string{"gestión de inventarios", "compras", "logística", "control de almacén", "excel"},
		PreferredSkills:    []string{"sap", "erp", "negociación con proveedores", "control de costos", "gestión de pedidos"},
		RequiredLanguages:  []string{"español"},
		PreferredLanguages: []string{"inglés"},
		MinExperienceYears: 2,
		MinScore:           70,
	},
	{
		ID:                 "recursos_humanos",
		Title:              "Recursos Humanos",
		Category:           CategoryOffice,
		RequiredSkills:     []string{"reclutamiento", "selección de personal", "gestión de personal", "nómina", "relaciones laborales"},
		PreferredSkills:    []string{"desarrollo organizacional", "capacitación", "clima laboral", "legislación laboral", "evaluación de desempeño"},
		RequiredLanguages:  []string{"español"},
		PreferredLanguages: []string{"inglés"},
		MinExperienceYears: 3,
		MinScore:           75,
	},
	{
		ID:                 "gerente_ventas",
		Title:              "Gerente de ventas",
		Category:           CategoryOffice,
		RequiredSkills:     []string{"gestión comercial", "liderazgo", "estrategia de ventas", "negociación", "desarrollo de negocios"},
		PreferredSkills:    []string{"crm", "análisis de mercado", "gestión de equipos", "kpis comerciales", "planeación estratégica"},
		RequiredLanguages:  []string{"español", "inglés"},
		MinExperienceYears: 3,
		MinScore:           80,
	},
	{
		ID:                 "ejecutivo_ventas",
		Title:              "Ejecutivo de Ventas",
		Category:           CategoryOffice,
		RequiredSkills:     []string{"ventas", "atención a clientes", "negociación", "prospección", "seguimiento comercial"},
		PreferredSkills:    []string{"crm", "presentaciones ejecutivas", "técnicas de venta", "análisis de mercado", "reportes de ventas"},
		RequiredLanguages:  []string{"español"},
		PreferredLanguages: []string{"inglés"},
		MinExperienceYears: 2,
		MinScore:           70,
	},
	{
		ID:                 "gerente_alta_media_tension",
		Title:              "Gerente de Alta y Media Tensión",
		Category:           CategoryOffice,
		RequiredSkills:     []string{"gestión de proyectos eléctricos", "alta tensión", "media tensión", "liderazgo", "planificación estratégica"},
		PreferredSkills:    []string{"gestión de equipos", "normativas eléctricas", "control de presupuestos", "gestión de riesgos", "relaciones con clientes"},
		RequiredLanguages:  []string{"español", "inglés"},
		MinExperienceYears: 2,
		MinScore:           80,
	},
	{
		ID:                 "gerente_qshe",
		Title:              "Gerente de QSHE / SGI",
		Category:           CategoryOffice,
		RequiredSkills:     []string{"sistemas de gestión", "seguridad industrial", "salud ocupacional", "gestión ambiental", "liderazgo"},
		PreferredSkills:    []string{"iso 9001", "iso 14001", "iso 45001", "auditorías", "gestión de riesgos"},
		RequiredLanguages:  []string{"español", "inglés"},
		MinExperienceYears: 2,
		MinScore:           80,
	},
	{
		ID:                 "coordinador_sgi",
		Title:              "Coordinador SGI",
		Category:           CategoryOffice,
		RequiredSkills:     []string{"sistemas integrados de gestión", "documentación", "auditorías internas", "mejora continua", "indicadores de gestión"},
		PreferredSkills:    []string{"iso 9001", "iso 14001", "iso 45001", "gestión de procesos", "capacitación"},
		RequiredLanguages:  []string{"español"},
		PreferredLanguages: []string{"inglés"},
		MinExperienceYears: 2,
		MinScore:           75,
	},
	{
		ID:                 "coordinador_qshe",
		Title:              "Coordinador QSHE",
		Category:           CategoryOffice,
		RequiredSkills:     []string{"seguridad industrial", "salud ocupacional", "medio ambiente", "normativa sst", "gestión de riesgos"},
		PreferredSkills:    []string{"investigación de accidentes", "capacitación en seguridad", "permisos de trabajo", "planes de emergencia", "auditorías"},
		RequiredLanguages:  []string{"español"},
		PreferredLanguages: []string{"inglés"},
		MinExperienceYears: 2,
		MinScore:           75,
	},
	{
		ID:                 "gestor_documental",
		Title:              "Gestor documental",
		Category:           CategoryOffice,
		RequiredSkills:     []string{"gestión documental", "organización de archivos", "control de documentos", "digitalización", "excel"},
		PreferredSkills:    []string{"sistemas de gestión documental", "normativas iso", "gestión de la información", "base de datos", "sharepoint"},
		RequiredLanguages:  []string{"español"},
		PreferredLanguages: []string{"inglés"},
		MinExperienceYears: 2,
		MinScore:           70,
	},
	{
		ID:                 "gerente_oym",
		Title:              "Gerente de O&M",
		Category:           CategoryOffice,
		RequiredSkills:     []string{"gestión de operaciones", "mantenimiento industrial", "liderazgo", "planificación estratégica", "gestión de proyectos"},
		PreferredSkills:    []string{"gestión de activos", "kpis operativos", "mejora continua", "gestión de presupuestos", "gestión de contratos"},
		RequiredLanguages:  []string{"español", "inglés"},
		MinExperienceYears: 2,
		MinScore:           80,
	},
	{
		ID:                 "coordinador_proyectos_norte",
		Title:              "Coordinador de proyectos zona norte",
		Category:           CategoryOffice,
		RequiredSkills:     []string{"gestión de proyectos", "coordinación de equipos", "planificación", "seguimiento de obras", "control de costos"},
		PreferredSkills:    []string{"ms project", "gestión de contratos", "reportes ejecutivos", "gestión de recursos", "resolución de conflictos"},
		RequiredLanguages:  []string{"español"},
		PreferredLanguages: []string{"inglés"},
		MinExperienceYears: 2,
		MinScore:           80,
	},
	{
		ID:                 "licitaciones_norte",
		Title:              "Licitaciones zona norte",
		Category:           CategoryOffice,
		RequiredSkills:     []string{"licitaciones públicas", "análisis de costos", "elaboración de propuestas", "excel avanzado", "normativa de contratación"},
		PreferredSkills:    []string{"compranet", "gestión de proyectos", "análisis de mercado", "negociación", "presentaciones ejecutivas"},
		RequiredLanguages:  []string{"español"},
		PreferredLanguages: []string{"inglés"},
		MinExperienceYears: 2,
		MinScore:           75,
	},
	{
		ID:                 "coordinador_grandes_correctivos",
		Title:              "Coordinador de grandes correctivos",
		Category:           CategoryOffice,
		RequiredSkills:     []string{"gestión de mantenimiento", "planificación de trabajos", "coordinación de equipos", "control de costos", "gestión de recursos"},
		PreferredSkills:    []string{"mantenimiento predictivo", "gestión de contratos", "kpis de mantenimiento", "mejora continua", "reportes técnicos"},
		RequiredLanguages:  []string{"español"},
		PreferredLanguages: []string{"inglés"},
		MinExperienceYears: 2,
		MinScore:           80,
	},
	{
		ID:                 "coordinador_proyectos_sur",
		Title:              "Coordinador de proyectos zona sur",
		Category:           CategoryOffice,
		RequiredSkills:     []string{"gestión de proyectos", "coordinación de equipos", "planificación", "seguimiento de obras", "control de costos"},
		PreferredSkills:    []string{"ms project", "gestión de contratos", "reportes ejecutivos", "gestión de recursos", "resolución de conflictos"},
		RequiredLanguages:  []string{"español"},
		PreferredLanguages: []string{"inglés"},
		MinExperienceYears: 2,
		MinScore:           80,
	},
	{
		ID:                 "jefe_proyecto",
		Title:              "Jefe de proyecto",
		Category:           CategoryOffice,
		RequiredSkills:     []string{"dirección de proyectos", "liderazgo", "gestión de recursos", "planificación estratégica", "control presupuestario"},
		PreferredSkills:    []string{"pmp", "gestión de riesgos", "gestión de stakeholders", "metodologías ágiles", "negociación"},
		RequiredLanguages:  []string{"español", "inglés"},
		MinExperienceYears: 3,
		MinScore:           85,
	},
	{
		ID:                 "gerente_suministros_reparacion",
		Title:              "Gerente de suministros y reparación de componentes",
		Category:           CategoryOffice,
		RequiredSkills:     []string{"gestión de suministros", "cadena de suministro", "gestión de reparaciones", "liderazgo", "planificación estratégica"},
		PreferredSkills:    []string{"erp", "gestión de inventarios", "negociación con proveedores", "control de calidad", "optimización de procesos"},
		RequiredLanguages:  []string{"español", "inglés"},
		MinExperienceYears: 2,
		MinScore:           85,
	},
	{
		ID:                 "operacion_mantenimiento",
		Title:              "Operación y Mantenimiento",
		Category:           CategoryTechnical,
		RequiredSkills:     []string{"mantenimiento industrial", "operación de equipos", "diagnóstico técnico", "seguridad industrial", "lectura de planos"},
		PreferredSkills:    []string{"automatización", "hidráulica", "neumática", "gestión de mantenimiento", "predictivo"},
		RequiredLanguages:  []string{"español"},
		PreferredLanguages: []string{"inglés"},
		MinExperienceYears: 2,
		MinScore:           70,
	},
	{
		ID:                 "alta_media_tension",
		Title:              "Alta y Media Tensión",
		Category:           CategoryTechnical,
		RequiredSkills:     []string{"electricidad industrial", "alta tensión", "media tensión", "protecciones eléctricas", "normas de seguridad"},
		PreferredSkills:    []string{"subestaciones", "transformadores", "pruebas eléctricas", "termografía", "mantenimiento predictivo"},
		RequiredLanguages:  []string{"español"},
		PreferredLanguages: []string{"inglés"},
		MinExperienceYears: 2,
		MinScore:           80,
	},
	{
		ID:                 "reparacion_componentes",
		Title:              "Reparación de componentes",
		Category:           CategoryTechnical,
		RequiredSkills:     []string{"mecánica", "diagnóstico", "reparación", "herramientas especializadas", "lectura de planos"},
		PreferredSkills:    []string{"soldadura", "metrología", "control de calidad", "hidráulica", "neumática"},
		RequiredLanguages:  []string{"español"},
		PreferredLanguages: []string{"inglés"},
		MinExperienceYears: 2,
		MinScore:           75,
	},
	{
		ID:                 "reparacion_palas",
		Title:              "Reparación de palas",
		Category:           CategoryTechnical,
		RequiredSkills:     []string{"reparación de palas", "materiales compuestos", "fibra de vidrio", "resinas", "trabajo en altura"},
		PreferredSkills:    []string{"inspección de daños", "acabados superficiales", "técnicas de laminado", "control de calidad", "mantenimiento preventivo"},
		RequiredLanguages:  []string{"español"},
		PreferredLanguages: []string{"inglés"},
		MinExperienceYears: 2,
		MinScore:           70,
	},
	{
		ID:                 "grandes_correctivos",
		Title:              "Grandes correctivos",
		Category:           CategoryTechnical,
		RequiredSkills:     []string{"mantenimiento correctivo", "diagnóstico de fallos", "reparaciones mayores", "gestión de proyectos", "seguridad industrial"},
		PreferredSkills:    []string{"planificación de trabajos", "supervisión de equipos", "control de costos", "gestión de recursos", "reportes técnicos"},
		RequiredLanguages:  []string{"español"},
		PreferredLanguages: []string{"inglés"},
		MinExperienceYears: 2,
		MinScore:           80,
	},
}
