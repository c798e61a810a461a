package seeders

import (
	"context"

	"github.com/jackc/pgx/v5/pgxpool"
)

func seedDepartments(ctx context.Context, db *pgxpool.Pool) error {
	_, err := db.Exec(ctx, `
		INSERT INTO departments (name) VALUES
		('Cardiologie'),
		('Radiologie'),
		('Urgences'),
		('Laboratoire'),
		('Bloc opératoire')
	`)
	return err
}

func seedPanneTypes(ctx context.Context, db *pgxpool.Pool) error {
	_, err := db.Exec(ctx, `
		INSERT INTO panne_types (name) VALUES
		('Électrique'),
		('Mécanique'),
		('Logiciel'),
		('Usure')
	`)
	return err
}

func seedEquipments(ctx context.Context, db *pgxpool.Pool) error {
	_, err := db.Exec(ctx, `
		INSERT INTO equipments (name, status, warranty, purchase_date, price, department_id, category, model) VALUES
		('Échographe portable',    'operational', 'valid',   '2024-03-15', 32000, 1, 'Imagerie',    'SonoSite Edge II'),
		('ECG 12 dérivations',     'operational', 'valid',   '2023-11-02', 4500,  1, 'Monitorage',  'Philips PageWriter'),
		('Scanner',                'maintenance', 'valid',   '2021-06-20', 410000, 2, 'Imagerie',   'Siemens Somatom'),
		('IRM 1.5T',               'operational', 'expired', '2018-01-10', 950000, 2, 'Imagerie',   'GE Signa'),
		('Défibrillateur',         'down',        'expired', '2019-09-05', 2800,  3, 'Urgence',     'Zoll R Series'),
		('Respirateur',            'operational', 'valid',   '2025-01-22', 18500, 3, 'Ventilation', 'Dräger Evita'),
		('Centrifugeuse',          'operational', 'valid',   '2024-08-30', 2100,  4, 'Analyse',     'Eppendorf 5702'),
		('Automate d''hématologie','maintenance', 'expired', '2020-04-17', 56000, 4, 'Analyse',    'Sysmex XN-1000'),
		('Table d''opération',     'operational', 'valid',   '2022-12-01', 38000, 5, 'Chirurgie',  'Maquet Alphastar'),
		('Bistouri électrique',    'down',        'valid',   '2023-05-19', 7400,  NULL, 'Chirurgie', 'Erbe VIO 3')
	`)
	return err
}

func seedPannes(ctx context.Context, db *pgxpool.Pool) error {
	_, err := db.Exec(ctx, `
		INSERT INTO pannes (description, status, type_id, department_id, created_at) VALUES
		('Écran du scanner hors service',          'Résolue',   1, 2, NOW() - INTERVAL '25 days'),
		('Bras de l''IRM bloqué',                  'En cours',  2, 2, NOW() - INTERVAL '12 days'),
		('Défibrillateur ne charge plus',          'Ouverte',   1, 3, NOW() - INTERVAL '6 days'),
		('Erreur logicielle de l''automate',       'Résolue',   3, 4, NOW() - INTERVAL '4 days'),
		('Pédale du bistouri usée',                'Ouverte',   4, NULL, NOW() - INTERVAL '2 days'),
		('Coupure d''alimentation au bloc',        'Résolue',   1, 5, NOW() - INTERVAL '1 day')
	`)
	return err
}

func seedMaintenances(ctx context.Context, db *pgxpool.Pool) error {
	_, err := db.Exec(ctx, `
		INSERT INTO maintenances (description, status, type, priority, scheduled_date, cost, start_date, equipment_id) VALUES
		('Révision annuelle du scanner',        'En cours',   'Préventive', 'Normale', CURRENT_DATE + 3,  1200, CURRENT_DATE - 2, 3),
		('Remplacement batterie défibrillateur','En cours',   'Corrective', 'Haute',   CURRENT_DATE + 1,  450,  CURRENT_DATE - 1, 5),
		('Étalonnage de l''automate',           'Planifiée',  'Préventive', 'Normale', CURRENT_DATE + 15, 800,  NULL, 8),
		('Contrôle qualité IRM',                'Planifiée',  'Préventive', 'Haute',   CURRENT_DATE + 8,  2300, NULL, 4),
		('Réparation pédale bistouri',          'Terminée',   'Corrective', 'Normale', CURRENT_DATE - 20, 310,  CURRENT_DATE - 20, 10)
	`)
	return err
}
